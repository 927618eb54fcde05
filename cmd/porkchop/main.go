package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/alfonsoSR/tudat"
	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

const (
	defaultScenario = "~~unset~~"
	dtFormat        = "2006-01-02 15:04:05"
)

var scenario string

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML to generate the porkchop from")
}

// readDate accepts either a Julian date or a formatted date under the key.
func readDate(key string) time.Time {
	if jd := viper.GetFloat64(key); jd != 0 {
		return julian.JDToTime(jd)
	}
	dt, err := time.Parse(dtFormat, viper.GetString(key))
	if err != nil {
		log.Fatalf("could not read %s: %s", key, err)
	}
	return dt
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml not found", scenario)
	}
	prefix := viper.GetString("General.fileprefix")
	c3plot := viper.GetBool("General.c3plot")
	departure, err := tudat.BodyStateFunc(viper.GetString("Departure.planet"))
	if err != nil {
		log.Fatal(err)
	}
	arrival, err := tudat.BodyStateFunc(viper.GetString("Arrival.planet"))
	if err != nil {
		log.Fatal(err)
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "cmd", "porkchop")
	pcp := tudat.Porkchop{
		Name:             prefix,
		Departure:        departure,
		Arrival:          arrival,
		InitLaunch:       readDate("Departure.from"),
		MaxLaunch:        readDate("Departure.until"),
		InitArrival:      readDate("Arrival.from"),
		MaxArrival:       readDate("Arrival.until"),
		PtsPerLaunchDay:  viper.GetFloat64("Departure.resolution"),
		PtsPerArrivalDay: viper.GetFloat64("Arrival.resolution"),
		GM:               tudat.SunGM,
		PlotC3:           c3plot,
		Logger:           klog,
	}
	if _, _, _, err := pcp.Generate(); err != nil {
		log.Fatal(err)
	}
}
