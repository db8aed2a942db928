// Command fractable prints every binary operation of package frac over a set
// of configured operands as a table.
//
// Defaults live in the configuration area below and can be overridden with
// environment variables (or a .env file):
//
//	FRACTABLE_OPERANDS   whitespace separated num,den pairs, e.g. "1,2 -3,4"
//	FRACTABLE_CHECKED    true to use overflow checked arithmetic
//	FRACTABLE_LOG_LEVEL  logrus level name
//	FRACTABLE_LOCALE     BCP 47 tag used to format numbers
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aatomu/frac"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Configuration Area
var (
	// numerator/denominator pairs
	operands = [][2]int64{{1, 2}, {1, 3}, {-3, 4}, {2, -6}, {0, 5}}
	// report overflow instead of wrapping
	checked = false
	// printer locale for numbers
	locale = "en"
)

func main() {
	start := time.Now()
	loadConfig()

	fractions := make([]frac.Fraction[int64], 0, len(operands))
	for _, pair := range operands {
		f, err := frac.Make(pair[0], pair[1])
		if err != nil {
			log.WithFields(log.Fields{"num": pair[0], "den": pair[1]}).Warn("Skip operand, error:", err)
			continue
		}
		fractions = append(fractions, f)
	}
	log.WithFields(log.Fields{"operands": len(fractions), "checked": checked}).Info("Table build start")

	failed := renderTable(os.Stdout, fractions, checked, locale)

	log.WithFields(log.Fields{"failed": failed, "duration": time.Since(start)}).Info("Table build finished")
}

// loadConfig overrides the configuration area from the environment.
func loadConfig() {
	godotenv.Load()

	if v := os.Getenv("FRACTABLE_LOG_LEVEL"); v != "" {
		level, err := log.ParseLevel(v)
		if err != nil {
			log.Fatal("Failed to parse FRACTABLE_LOG_LEVEL, error:", err)
		}
		log.SetLevel(level)
	}
	if v := os.Getenv("FRACTABLE_OPERANDS"); v != "" {
		parsed, err := parseOperands(v)
		if err != nil {
			log.Fatal("Failed to parse FRACTABLE_OPERANDS, error:", err)
		}
		operands = parsed
	}
	if v := os.Getenv("FRACTABLE_CHECKED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatal("Failed to parse FRACTABLE_CHECKED, error:", err)
		}
		checked = b
	}
	if v := os.Getenv("FRACTABLE_LOCALE"); v != "" {
		locale = v
	}
	log.Debugf("Config: operands=%v checked=%t locale=%s", operands, checked, locale)
}

// parseOperands reads "num,den" integer pairs separated by whitespace.
func parseOperands(s string) ([][2]int64, error) {
	var pairs [][2]int64
	for _, field := range strings.Fields(s) {
		numStr, denStr, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("operand %q: want num,den", field)
		}
		num, err := strconv.ParseInt(numStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("operand %q numerator: %w", field, err)
		}
		den, err := strconv.ParseInt(denStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("operand %q denominator: %w", field, err)
		}
		pairs = append(pairs, [2]int64{num, den})
	}
	return pairs, nil
}
