// Package config provides configuration management for the dev server.
//
// It utilizes Viper for layering configuration from struct-tag defaults, an
// optional .env file, DEVSERVER_* environment variables and command-line flags.
//
// # Configuration Structure
//
//   - Server: bind host and port, served root, directory browsing, start page
//   - Log: logging level, format and output
//
// # Precedence
//
// A changed --port flag wins over DEVSERVER_SERVER_PORT set in the process
// environment, which wins over the same key in the .env file, which wins over
// the default of 8000. The parsed value is carried
// in Config.Server and passed explicitly to the server.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.Port)
package config
