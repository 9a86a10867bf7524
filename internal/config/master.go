package config

import "os"

type AppConfig struct {
	DebugMode       bool
	HTTPPort        int
	RevalidateCfg   *RevalidateCfg
	JudgeConfig     *JudgeConfig
	LeaderboardCfg  *LeaderboardCfg
	RedisConfig     *RedisConfig
	PostgresConfig  *PostgresConfig
	JwtConfig       *JwtConfig
	SeededLanguages []LanguageSeed
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:       os.Getenv("DEBUG_MODE") == "true",
		HTTPPort:        getEnvInt("HTTP_PORT", 8080),
		RevalidateCfg:   NewRevalidateCfg(),
		JudgeConfig:     NewJudgeConfig(),
		LeaderboardCfg:  NewLeaderboardCfg(),
		RedisConfig:     NewRedisConfig(),
		PostgresConfig:  NewPostgresConfig(),
		JwtConfig:       NewJwtConfig(),
		SeededLanguages: ParseLanguageSeeds(os.Getenv("SEED_LANGUAGES")),
	}
}
