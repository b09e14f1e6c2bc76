// Copyright 2025 Google LLC
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

package clock

import (
	"time"

	"github.com/jacobsa/timeutil"
)

// Implements Clock interface.
type RealClock struct{}

// Now returns the current local time, delegating to jacobsa/timeutil's own
// real clock rather than calling time.Now directly, so that everything
// reading wall-clock time in this repository goes through one seam.
func (RealClock) Now() time.Time {
	return timeutil.RealClock().Now()
}
