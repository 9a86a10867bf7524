package config

import "time"

type RevalidateCfg struct {
	Interval    time.Duration
	MaxAge      time.Duration
	BatchSize   int
	Parallelism int
	// RetryAfter holds back solutions that could not be judged
	RetryAfter time.Duration
}

func NewRevalidateCfg() *RevalidateCfg {
	return &RevalidateCfg{
		Interval:    getEnvSeconds("REVALIDATE_INTERVAL_SEC", 600),
		MaxAge:      getEnvSeconds("REVALIDATE_MAX_AGE_SEC", 30*24*3600),
		BatchSize:   getEnvInt("REVALIDATE_BATCH_SIZE", 50),
		Parallelism: getEnvInt("REVALIDATE_PARALLELISM", 4),
		RetryAfter:  getEnvSeconds("REVALIDATE_RETRY_AFTER_SEC", 3600),
	}
}
