//
// Copyright (c) 2021-2024 The blflash Authors
// All rights reserved
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/golang/glog"
	"github.com/juju/errors"
	flag "github.com/spf13/pflag"

	"github.com/bouffalo-tools/blflash/cli/ourutil"
)

const envPrefix = "BLFLASH_"

type handler func(ctx context.Context) error

type command struct {
	name    string
	handler handler
	short   string
}

var commands = []command{
	{"flash", flashCmd, `Flash a firmware image to the device`},
	{"check", checkCmd, `Check whether the device's flash matches the image`},
	{"dump", dumpCmd, `Dump a flash range to a file`},
	{"reset", resetCmd, `Reset the chip (--loader resets into the ROM loader)`},
}

func getCommand(name string) *command {
	for i := range commands {
		if commands[i].name == name {
			return &commands[i]
		}
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args...]\n\nCommands:\n", os.Args[0])
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.short)
	}
	fmt.Fprintf(os.Stderr, "\nFlags:\n%s", flag.CommandLine.FlagUsages())
}

// setFlagsFromEnv gives every flag that was not set on the command line a
// chance to pick its value up from the environment (BLFLASH_PORT, ...).
func setFlagsFromEnv(fs *flag.FlagSet, prefix string) {
	nonset := make(map[string]*flag.Flag)
	fs.VisitAll(func(f *flag.Flag) {
		nonset[f.Name] = f
	})
	fs.Visit(func(f *flag.Flag) {
		delete(nonset, f.Name)
	})
	names := make([]string, 0, len(nonset))
	for name := range nonset {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		env := prefix + strings.Replace(strings.ToUpper(name), "-", "_", -1)
		if v := os.Getenv(env); v != "" {
			nonset[name].Value.Set(v)
			nonset[name].Changed = true
		}
	}
}

func main() {
	defer glog.Flush()
	flag.Usage = usage
	// Pick up glog's -v/-logtostderr flags.
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	flag.Parse()
	setFlagsFromEnv(flag.CommandLine, envPrefix)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	c := getCommand(args[0])
	if c == nil {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage()
		os.Exit(1)
	}
	if err := c.handler(context.Background()); err != nil {
		ourutil.Reportf("Error: %s", errors.ErrorStack(err))
		glog.Flush()
		os.Exit(1)
	}
}
