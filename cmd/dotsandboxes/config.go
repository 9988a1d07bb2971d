package main

// Switch is an on/off config value tolerant of the usual spellings.
type Switch string

var switchValues = map[Switch]bool{
	"ON": true,
	"On": true,
	"on": true,
	"1":  true,

	"OFF": false,
	"Off": false,
	"off": false,
	"0":   false,
}

func (s Switch) Bool() bool {
	return switchValues[s]
}

// Config is the app configuration, loadable from YAML and overridable
// by flags.
type Config struct {
	// BoardSize is the dot lattice side length.
	BoardSize int    `json:",default=5"`
	Music     Switch `json:",default=on"`
	// LogDir receives one JSON-lines move journal per session.
	LogDir string `json:",default=gamelogs"`
	Pprof  struct {
		Enable bool   `json:",optional"`
		Addr   string `json:",default=localhost:6060"`
	}
}
