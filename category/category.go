/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package category identifies data sets within encoded charts.  Each data set
// defines a Category once, and each of its points is tagged with that
// Category's ID so that a renderer can associate them.
package category

import (
	"github.com/ilhamster/chartviz/util"
)

const (
	categoryDefinedIDKey   = "category_defined_id"
	categoryDisplayNameKey = "category_display_name"
	categoryIDsKey         = "category_ids"
)

// Category identifies a single data set.
type Category struct {
	id, displayName string
}

// New returns a new Category with the provided ID and display name.
func New(id, displayName string) *Category {
	return &Category{
		id:          id,
		displayName: displayName,
	}
}

// Define annotates with the receiving Category's definition.
func (c *Category) Define() util.PropertyUpdate {
	return util.Chain(
		util.StringProperty(categoryDefinedIDKey, c.id),
		util.If(c.displayName != "", util.StringProperty(categoryDisplayNameKey, c.displayName)),
	)
}

// ID returns the receiver's ID.
func (c *Category) ID() string {
	return c.id
}

// DisplayName returns the receiver's display name.
func (c *Category) DisplayName() string {
	return c.displayName
}

// Tag tags with the receiving Category.
func (c *Category) Tag() util.PropertyUpdate {
	return Tag(c)
}

// Tag tags with all the provided Categories.
func Tag(cats ...*Category) util.PropertyUpdate {
	categoryIDs := make([]string, len(cats))
	for idx, cat := range cats {
		categoryIDs[idx] = cat.id
	}
	return util.StringsProperty(categoryIDsKey, categoryIDs...)
}
