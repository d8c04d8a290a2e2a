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

package statement

import (
	"slices"
	"strings"

	"github.com/vikasyadav15/crossdata/go/vt/lucene"
)

// Option is a key/value pair of a WITH OPTIONS clause, as rendered text.
type Option struct {
	Key   string
	Value string
}

// Options keeps options in the order they are rendered.
type Options []Option

// String renders the options as a CQL map literal.
func (o Options) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(opt.Key)
		sb.WriteString(": ")
		sb.WriteString(opt.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Get returns the value of key.
func (o Options) Get(key string) (string, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return "", false
}

func (o Options) clone() Options {
	return slices.Clone(o)
}

func fromLucene(options []lucene.Option) Options {
	result := make(Options, len(options))
	for i, opt := range options {
		result[i] = Option{Key: opt.Key, Value: opt.Value}
	}
	return result
}
