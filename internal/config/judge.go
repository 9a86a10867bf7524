package config

import "time"

type JudgeConfig struct {
	Url        string
	Timeout    time.Duration
	VerdictTTL time.Duration // 0 disables the verdict cache
}

func NewJudgeConfig() *JudgeConfig {
	return &JudgeConfig{
		Url:        getEnv("JUDGE_URL", "http://localhost:8090"),
		Timeout:    getEnvSeconds("JUDGE_TIMEOUT_SEC", 30),
		VerdictTTL: getEnvSeconds("JUDGE_VERDICT_TTL_SEC", 600),
	}
}

type LeaderboardCfg struct {
	CacheTTL time.Duration // 0 disables the cache
}

func NewLeaderboardCfg() *LeaderboardCfg {
	return &LeaderboardCfg{
		CacheTTL: getEnvSeconds("LEADERBOARD_CACHE_TTL_SEC", 300),
	}
}
