package blocklist

import (
	"os"
	"strconv"
)

type config struct {
	blockSize int
}

func resolveConfig(opts ...func(*config)) *config {
	cfg := &config{}
	if env := os.Getenv("BLOCKLIST_BLOCKSIZE"); env != "" {
		if val, err := strconv.Atoi(env); err == nil {
			cfg.blockSize = val
		}
	}
	if cfg.blockSize == 0 {
		cfg.blockSize = 16
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// OptList returns a slice with the opts given; useful if you want to possibly
// append more options to the list before using it with New(list...).
func OptList(opts ...func(*config)) []func(*config) {
	return opts
}

// OptBlockSize sets the nominal number of elements a block holds before the
// container splits it in two. The split and merge thresholds need room to
// work, so New rejects values of 4 or less. Defaults to env
// BLOCKLIST_BLOCKSIZE or 16.
func OptBlockSize(size int) func(*config) {
	return func(cfg *config) {
		cfg.blockSize = size
	}
}
