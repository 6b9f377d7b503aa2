// Package config manages user-level settings stored at ~/.mkbpf/config.yaml.
// Values can also come from MKBPF_* environment variables. They supply
// defaults for scaffold flags such as the parent directory and the bug
// report address written into generated loaders.
package config
