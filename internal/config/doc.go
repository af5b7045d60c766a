// Package config manages user-level settings stored at ~/.right/config.yaml.
// Values can be overridden with RIGHT_* environment variables and fall back
// to built-in defaults such as the branch names used by "right init --git".
package config
