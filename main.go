// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tfctl/textdiff/internal/cacheutil"
	"github.com/tfctl/textdiff/internal/command"
	"github.com/tfctl/textdiff/internal/config"
	"github.com/tfctl/textdiff/internal/log"
	"github.com/tfctl/textdiff/internal/version"
)

// Exit statuses follow diff(1).
const (
	exitOK          = 0
	exitDifferences = 1
	exitError       = 2
)

var ctx = context.Background()

// boolFlags never take a value, so deduplicateFlags must not pair them with
// the following argument.
var boolFlags = map[string]bool{
	"c":         true,
	"color":     true,
	"exit-code": true,
	"h":         true,
	"help":      true,
	"n":         true,
	"numbers":   true,
	"strip-cr":  true,
	"t":         true,
	"titles":    true,
	"v":         true,
	"version":   true,
	"w":         true,
	"watch":     true,
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	switch {
	case len(args) > 1 && args[1] == "completion":
		// Short-circuit completion: pass args directly.
		return args
	default:
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)

		args = deduplicateFlags(args)
		log.Debugf("args after dedup: args=%v", args)
		return args
	}
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	// Pre-create cache directory when caching is enabled and drop stale
	// entries.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}
	if hours, _ := config.GetInt("cache.clean", 0); hours > 0 {
		if err := cacheutil.Purge(hours); err != nil {
			log.Debugf("cache purge err: err=%v", err)
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return exitError
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, command.ErrDifferencesFound) {
			return exitDifferences
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return exitError
	}

	return exitOK
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return exitOK
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set arguments at the @set position.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	if len(args) <= idx {
		return args
	}
	set := "defaults"
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			if a[1:] != "" {
				set = a[1:]
			}
			removeIdx = idx + i
			break
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}

// deduplicateFlags drops every occurrence of a repeated flag except the last,
// so a flag expanded from an @set can be overridden on the command line.
// "--name=value", "--name value" and "--name" count as the same flag. The
// program and command (args[0:2]) and positional arguments are kept in order.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return append([]string{}, args...)
	}

	type group struct {
		key    string
		tokens []string
	}

	var groups []group
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !isFlag(a) {
			groups = append(groups, group{tokens: []string{a}})
			continue
		}

		name := strings.TrimLeft(a, "-")
		g := group{key: name, tokens: []string{a}}
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			g.key = name[:eq]
		} else if !boolFlags[name] && i+1 < len(args) && !isFlag(args[i+1]) {
			g.tokens = append(g.tokens, args[i+1])
			i++
		}
		groups = append(groups, g)
	}

	last := map[string]int{}
	for i, g := range groups {
		if g.key != "" {
			last[g.key] = i
		}
	}

	result := append([]string{}, args[:2]...)
	for i, g := range groups {
		if g.key != "" && last[g.key] != i {
			continue
		}
		result = append(result, g.tokens...)
	}
	return result
}

// isFlag reports whether a looks like a flag rather than a value. "-" (stdin)
// and negative numbers are values.
func isFlag(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	if _, err := strconv.Atoi(a); err == nil {
		return false
	}
	return true
}
