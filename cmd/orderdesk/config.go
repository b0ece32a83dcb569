package main

import (
	"flag"
	"os"
	"strconv"
)

type Config struct {
	endpoint      string
	dsn           string
	logLevel      string
	env           string
	jobPrefix     string
	jobDigits     int
	rescanMinutes int
}

func NewConfig() Config {
	var (
		endpoint      string
		dsn           string
		logLevel      string
		env           string
		jobPrefix     string
		jobDigits     int
		rescanMinutes int
	)

	flag.StringVar(&endpoint, "a", "localhost:8090", "address and port to run server")
	flag.StringVar(&dsn, "d", "", "data source name for database connection")
	flag.StringVar(&jobPrefix, "p", "EJB", "job number prefix")
	flag.IntVar(&rescanMinutes, "i", 15, "deadline rescan interval in minutes")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	if d := os.Getenv("DATABASE_URI"); d != "" {
		dsn = d
	}

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		logLevel = l
	} else {
		logLevel = "error"
	}

	if e := os.Getenv("ENV"); e != "" {
		env = e
	} else {
		env = "production"
	}

	if p := os.Getenv("JOB_NUMBER_PREFIX"); p != "" {
		jobPrefix = p
	}

	jobDigits = 5
	if d := os.Getenv("JOB_NUMBER_DIGITS"); d != "" {
		if parsed, err := strconv.Atoi(d); err == nil && parsed > 0 {
			jobDigits = parsed
		}
	}

	if i := os.Getenv("DEADLINE_RESCAN_MINUTES"); i != "" {
		if parsed, err := strconv.Atoi(i); err == nil && parsed > 0 {
			rescanMinutes = parsed
		}
	}

	return Config{
		endpoint,
		dsn,
		logLevel,
		env,
		jobPrefix,
		jobDigits,
		rescanMinutes,
	}
}
