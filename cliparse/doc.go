// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Sources

Each setting is taken from the first source that has it:

 1. CLI flag
 2. Environment variable (a .env file is loaded first, never overriding
    variables that are already set)
 3. YAML config file given by -c or CONFIG_FILE
 4. Default

# Settings

	flag              env               yaml             default
	-p                PORT              port             3318
	-t                STORAGE_TYPE      storage          sqlite
	-d                DATABASE_URL      database_url     file:neurocare.db (sqlite only)
	-redis            REDIS_URL         redis_url
	-profile-salt     PROFILE_SALT      profile_salt     (required)
	-backend          BACKEND_URL       backend_url
	-backend-timeout  BACKEND_TIMEOUT   backend_timeout  10s
	-backend-retries  BACKEND_RETRIES   backend_retries  2
	-chat             CHAT_MODE         chat_mode        canned
	-require-auth     REQUIRE_AUTH      require_auth     false
	-tz               TIMEZONE          timezone         Local

-env-file names the dotenv file (default .env; a missing file is ignored).

# Validation

ParseFlags returns an error if:

  - PROFILE_SALT is missing
  - the storage type is unknown, or its URL is missing
  - chat mode is remote, or bearer auth is on, without BACKEND_URL
  - the time zone cannot be loaded

# Example config file

	storage: postgres
	database_url: postgres://neurocare@localhost/neurocare?sslmode=disable
	profile_salt: change-me
	backend_url: http://localhost:8080
	chat_mode: remote
*/
package cliparse
