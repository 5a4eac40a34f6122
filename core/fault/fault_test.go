// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fault_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workday/OpenFrame-sub026/core/fault"
)

const (
	errorMessage = "Some message"
	anError      = fault.Const(errorMessage)
	anotherError = fault.Const("another")
)

func TestConst(t *testing.T) {
	assert.Equal(t, errorMessage, anError.Error())
	var err error = anError
	assert.True(t, err == anError)
	assert.False(t, err == anotherError)
}

func TestIs(t *testing.T) {
	wrapped := errors.Wrapf(errors.Wrap(anError, "inner"), "outer %d", 2)
	assert.True(t, fault.Is(wrapped, anError))
	assert.False(t, fault.Is(wrapped, anotherError))
	assert.False(t, fault.Is(nil, anError))
	assert.False(t, fault.Is(errors.New("plain"), anError))
	assert.Equal(t, "outer 2: inner: "+errorMessage, wrapped.Error())
}

func TestList(t *testing.T) {
	list := fault.List{}
	require.NoError(t, list.Err())
	list.Collect(nil)
	require.Len(t, list, 0)
	list.Collect(anError)
	require.Len(t, list, 1)
	assert.Equal(t, anError, list.Err())
	list.Collect(anotherError)
	require.Len(t, list, 2)
	assert.EqualError(t, list.Err(), errorMessage+"; another")
}

func TestOne(t *testing.T) {
	one := fault.One{}
	require.NoError(t, one.First())
	one.Collect(anError)
	assert.Equal(t, anError, one.First())
	one.Collect(anotherError)
	assert.Equal(t, anError, one.First())
}
