// Package config loads environment-based configuration into tagged structs.
//
// It wraps caarlos0/env for struct parsing and godotenv for optional .env
// files. The storage adapter packages (fsmpg, fsmredis, fsmmongo) define
// env-tagged Config structs and expose LoadConfig helpers built on this
// package.
//
// # Usage
//
//	cfg, err := fsmpg.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Or directly:
//
//	var cfg fsmredis.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package config
