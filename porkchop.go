package tudat

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/matrix/mat64"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/planetposition"
)

const (
	// AU is one astronomical unit in meters.
	AU = 1.49597870691e11
	// SunGM is the heliocentric gravitational parameter in m^3/s^2.
	SunGM = 1.32712440018e20
)

// StateFunc returns the position and velocity of a body at a given epoch, in
// meters and meters per second.
type StateFunc func(dt time.Time) (R, V *mat64.Vector)

// Porkchop evaluates the Izzo targeter over a departure window times an
// arrival window and writes the Matlab-compatible contour files
// (contour-<name>-{c3,tof,vinf,dates}.dat) into the configured output
// directory. Grid points on which the targeter fails are recorded as NaN
// samples so the contours keep their shape.
type Porkchop struct {
	Name                              string
	Departure, Arrival                StateFunc
	InitLaunch, MaxLaunch             time.Time
	InitArrival, MaxArrival           time.Time
	PtsPerLaunchDay, PtsPerArrivalDay float64
	GM                                float64
	PlotC3                            bool // Store c3 rather than the departure v∞ norm
	Logger                            kitlog.Logger
}

// Generate runs the grid and returns the c3, time of flight and arrival v∞
// maps keyed by launch date.
func (p Porkchop) Generate() (c3Map, tofMap, vinfMap map[time.Time][]float64, err error) {
	logger := p.Logger
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	launchWindow := int(p.MaxLaunch.Sub(p.InitLaunch).Hours() / 24)    // days
	arrivalWindow := int(p.MaxArrival.Sub(p.InitArrival).Hours() / 24) // days
	c3Map = make(map[time.Time][]float64)
	tofMap = make(map[time.Time][]float64)
	vinfMap = make(map[time.Time][]float64)
	logger.Log("level", "info", "subsys", "porkchop", "name", p.Name, "launch(days)", launchWindow, "arrival(days)", arrivalWindow)
	// Header of the dat files. No trailing new line because the sample loop
	// starts each row with one.
	dat := fmt.Sprintf("%% %s\n%%arrival days as new lines, departure as new columns", p.Name)
	hdls := make([]*os.File, 4)
	var fNames []string
	if p.PlotC3 {
		fNames = []string{"c3", "tof", "vinf", "dates"}
	} else {
		fNames = []string{"vinf-init", "tof", "vinf-arrival", "dates"}
	}
	outDir := tudatConfig().outputDir
	for i, name := range fNames {
		f, ferr := os.Create(filepath.Join(outDir, fmt.Sprintf("contour-%s-%s.dat", p.Name, name)))
		if ferr != nil {
			return nil, nil, nil, ferr
		}
		defer f.Close()
		if _, ferr = f.WriteString(dat); ferr != nil {
			return nil, nil, nil, ferr
		}
		hdls[i] = f
	}

	// Write the date information now and close that file.
	hdls[3].WriteString(fmt.Sprintf("\n%%departure: \"%s\"\n%%arrival: \"%s\"\n%d,%d\n%d,%d\n", p.InitLaunch.Format("2006-Jan-02"), p.InitArrival.Format("2006-Jan-02"), 1, launchWindow, 1, arrivalWindow))
	hdls[3].Close()

	for launchDay := 0.; launchDay < float64(launchWindow); launchDay += 1 / p.PtsPerLaunchDay {
		for _, hdl := range hdls[:3] {
			if _, ferr := hdl.WriteString("\n"); ferr != nil {
				return nil, nil, nil, ferr
			}
		}
		launchDT := p.InitLaunch.Add(time.Duration(launchDay*24*3600) * time.Second)
		samples := arrivalWindow * int(p.PtsPerArrivalDay)
		c3Map[launchDT] = make([]float64, samples)
		tofMap[launchDT] = make([]float64, samples)
		vinfMap[launchDT] = make([]float64, samples)

		launchR, launchV := p.Departure(launchDT)
		arrivalIdx := 0
		for arrivalDay := 0.; arrivalDay < float64(arrivalWindow); arrivalDay += 1 / p.PtsPerArrivalDay {
			arrivalDT := p.InitArrival.Add(time.Duration(arrivalDay*24) * time.Hour)
			arrivalR, arrivalV := p.Arrival(arrivalDT)

			tof := arrivalDT.Sub(launchDT)
			sol, serr := SolveLambertProblemIzzo(launchR, arrivalR, tof, p.GM, false, false)
			var c3, vInfArrival float64
			if serr != nil {
				logger.Log("level", "warning", "subsys", "porkchop", "departure", launchDT, "arrival", arrivalDT, "err", serr)
				c3 = math.NaN()
				vInfArrival = math.NaN()
			} else {
				VInfInit := mat64.NewVector(3, nil)
				VInfInit.SubVec(launchV, sol.V1)
				// When not plotting the c3, the departure v∞ norm is stored
				// in the c3 column instead.
				if p.PlotC3 {
					c3 = math.Pow(mat64.Norm(VInfInit, 2), 2)
				} else {
					c3 = mat64.Norm(VInfInit, 2)
				}
				VInfArrival := mat64.NewVector(3, nil)
				VInfArrival.SubVec(arrivalV, sol.V2)
				vInfArrival = mat64.Norm(VInfArrival, 2)
			}
			hdls[0].WriteString(fmt.Sprintf("%f,", c3))
			hdls[1].WriteString(fmt.Sprintf("%f,", tof.Hours()/24))
			hdls[2].WriteString(fmt.Sprintf("%f,", vInfArrival))
			c3Map[launchDT][arrivalIdx] = c3
			tofMap[launchDT][arrivalIdx] = tof.Hours() / 24
			vinfMap[launchDT][arrivalIdx] = vInfArrival
			arrivalIdx++
		}
	}
	logger.Log("level", "notice", "subsys", "porkchop", "name", p.Name, "status", "finished")
	return c3Map, tofMap, vinfMap, nil
}

// BodyStateFunc returns a heliocentric StateFunc for a VSOP87 planet, with
// the velocity estimated at circular speed along the ecliptic direction of
// motion. The VSOP87 data directory comes from the configuration file.
func BodyStateFunc(planet string) (StateFunc, error) {
	var idx int
	switch strings.ToLower(planet) {
	case "mercury":
		idx = 0
	case "venus":
		idx = 1
	case "earth":
		idx = 2
	case "mars":
		idx = 3
	case "jupiter":
		idx = 4
	case "saturn":
		idx = 5
	case "uranus":
		idx = 6
	case "neptune":
		idx = 7
	default:
		return nil, fmt.Errorf("undefined planet '%s'", planet)
	}
	pp, err := planetposition.LoadPlanetPath(idx, tudatConfig().VSOP87Dir)
	if err != nil {
		return nil, err
	}
	return func(dt time.Time) (*mat64.Vector, *mat64.Vector) {
		l, b, r := pp.Position2000(julian.TimeToJD(dt))
		r *= AU
		R := make([]float64, 3)
		sB, cB := math.Sincos(b.Rad())
		sL, cL := math.Sincos(l.Rad())
		R[0] = r * cB * cL
		R[1] = r * cB * sL
		R[2] = r * sB
		v := math.Sqrt(SunGM / r)
		vDir := cross(R, []float64{0, 0, -1})
		V := make([]float64, 3)
		for i := 0; i < 3; i++ {
			V[i] = v * vDir[i] / norm(vDir)
		}
		return mat64.NewVector(3, R), mat64.NewVector(3, V)
	}, nil
}
