package config

import "time"

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultOutputFile     = "cotacoes.csv"
	DefaultLogFile        = "cotacoes.log"
	DefaultPGMaxConns     = 5
	DefaultPGMinConns     = 1
)
