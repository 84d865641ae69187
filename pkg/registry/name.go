// Copyright (c) 2025, Pulse Metrics Authors.  All rights reserved.
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

package registry

import (
	"strings"

	"github.com/pulsemetrics/pulse/pkg/errors"
)

// Name identifies an instrument. Group and Name are required; Kind
// qualifies the owning component and becomes part of the group key;
// Scope distinguishes otherwise identical registrations (for example
// per-connection instances) without appearing in serialized output.
type Name struct {
	Group string
	Kind  string
	Name  string
	Scope string
}

// NewName creates a Name with the required group and name fields.
func NewName(group, name string) Name {
	return Name{Group: group, Name: name}
}

// WithKind returns a copy of the name with the component qualifier set.
func (n Name) WithKind(kind string) Name {
	n.Kind = kind
	return n
}

// WithScope returns a copy of the name with the instance qualifier set.
func (n Name) WithScope(scope string) Name {
	n.Scope = scope
	return n
}

// GroupKey returns the presentation group for this name: the group,
// extended with the kind qualifier when one is set. Group keys are the
// top-level field names of a serialized document and its sort order.
func (n Name) GroupKey() string {
	if n.Kind == "" {
		return n.Group
	}
	return n.Group + "." + n.Kind
}

// String renders the fully qualified identifier for logs and errors.
func (n Name) String() string {
	var b strings.Builder
	b.WriteString(n.GroupKey())
	b.WriteByte('.')
	b.WriteString(n.Name)
	if n.Scope != "" {
		b.WriteByte('.')
		b.WriteString(n.Scope)
	}
	return b.String()
}

// Validate checks that the required identifier fields are present.
func (n Name) Validate() error {
	if n.Group == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "instrument name requires a group")
	}
	if n.Name == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "instrument name requires a name")
	}
	return nil
}
