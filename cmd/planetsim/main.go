package main

import (
	"flag"
	"math"
	"os"
	"time"

	planetary "github.com/ARCIST-AI/PLANETARY-sub001"
	kitlog "github.com/go-kit/kit/log"
)

var (
	confDir  = flag.String("conf", ".", "directory holding planetary.toml")
	years    = flag.Float64("years", 1, "simulated duration in Julian years")
	interval = flag.Int("log-every", 1000, "steps between status lines")
)

func main() {
	flag.Parse()
	logger := kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout)), "app", "planetsim")

	cfg, err := planetary.LoadConfig(*confDir)
	if err != nil {
		logger.Log("level", "warning", "err", err, "msg", "using default configuration")
		cfg = planetary.DefaultConfig()
		cfg.Method = planetary.RK4
		cfg.TimeStep = 3600
	}
	in, err := planetary.NewIntegrator(cfg)
	if err != nil {
		logger.Log("level", "critical", "err", err)
		os.Exit(1)
	}
	in.SetLogger(logger)
	in.SetCollisionHandler(func(ev planetary.CollisionEvent) {
		logger.Log("level", "warning", "event", "collision", "bodies", ev.A.Name+"/"+ev.B.Name, "distance(m)", ev.Distance)
	})

	sun := planetary.NewBody("Sun", 1.989e30, 6.957e8, 1408)
	sun.Luminosity = 3.828e26
	earth := planetary.NewBody("Earth", 5.972e24, 6.371e6, 5514)
	earth.R = []float64{1.496e11, 0, 0}
	earth.V = []float64{0, math.Sqrt(planetary.G * sun.Mass / 1.496e11), 0}
	earth.HasAtmosphere = true
	earth.AtmosphereHeight = 1e5
	earth.HasMagneticField = true
	earth.DipoleMoment = 8e22
	bodies := []*planetary.Body{sun, earth}

	steps := int(*years * 365.25 * 86400 / cfg.TimeStep)
	start := time.Now()
	for k := 0; k < steps; k++ {
		in.Step(bodies, 0)
		if k%*interval == 0 {
			logger.Log("level", "info", "step", k, "earthR(m)", norm3(earth.R))
		}
	}
	logger.Log("level", "notice", "status", "finished", "steps", steps, "wall", time.Since(start).String())

	els, err := planetary.Extract(earth, sun)
	if err != nil {
		logger.Log("level", "critical", "err", err)
		os.Exit(1)
	}
	logger.Log("level", "info", "a(m)", els.SemiMajorAxis, "e", els.Eccentricity, "period(s)", els.OrbitalPeriod)
}

func norm3(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
