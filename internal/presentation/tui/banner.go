package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the FieldQuote startup banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Amber-to-orange gradient, one color per line.
	s1 := termenv.String(`  ___ _     _    _  ___              _       `).Foreground(p.Color("#fbbf24"))
	s2 := termenv.String(` | __(_)___| |__| |/ _ \ _  _ ___ __| |_ ___ `).Foreground(p.Color("#f59e0b"))
	s3 := termenv.String(` | _|| / -_) / _` + "`" + ` | (_) | || / _ \  _/ -_)`).Foreground(p.Color("#f97316"))
	s4 := termenv.String(` |_| |_\___|_\__,_|\__\_\\_,_\___/\__\___|`).Foreground(p.Color("#ea580c"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println()
}
