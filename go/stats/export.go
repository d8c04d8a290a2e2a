/*
Copyright 2026 The Crossdata Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package stats is a wrapper for expvar-like variables that additionally
// exports them to pluggable backends such as Prometheus.
//
// Variables are published under a name when they are created. A variable
// created with an empty name is not published, which is handy for tests.
package stats

import (
	"fmt"
	"sync"
)

// Variable is the minimal interface which each type in this "stats" package
// must implement.
type Variable interface {
	// Help returns the description of the variable.
	Help() string

	// String must implement String() from the expvar.Var interface.
	String() string
}

// NewVarHook is the type of a hook to export variables in a different way
type NewVarHook func(name string, v Variable)

type varGroup struct {
	sync.Mutex
	vars       map[string]Variable
	names      []string
	newVarHook []NewVarHook
}

var defaultVarGroup = varGroup{vars: make(map[string]Variable)}

// Register allows you to register a callback function that will be called
// whenever a new stats variable gets created. Variables published before the
// hook is registered are replayed to it in creation order.
func Register(nvh NewVarHook) {
	defaultVarGroup.Lock()
	defaultVarGroup.newVarHook = append(defaultVarGroup.newVarHook, nvh)
	existing := make([]string, len(defaultVarGroup.names))
	copy(existing, defaultVarGroup.names)
	defaultVarGroup.Unlock()

	for _, name := range existing {
		nvh(name, Get(name))
	}
}

// Get returns the published variable with the given name, or nil.
func Get(name string) Variable {
	defaultVarGroup.Lock()
	defer defaultVarGroup.Unlock()
	return defaultVarGroup.vars[name]
}

// publish is called by every stats variable constructor.
func publish(name string, v Variable) {
	defaultVarGroup.Lock()
	if _, ok := defaultVarGroup.vars[name]; ok {
		defaultVarGroup.Unlock()
		panic(fmt.Sprintf("stats: reuse of exported var name %q", name))
	}
	defaultVarGroup.vars[name] = v
	defaultVarGroup.names = append(defaultVarGroup.names, name)
	hooks := make([]NewVarHook, len(defaultVarGroup.newVarHook))
	copy(hooks, defaultVarGroup.newVarHook)
	defaultVarGroup.Unlock()

	for _, hook := range hooks {
		hook(name, v)
	}
}
