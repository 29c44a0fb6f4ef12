/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package remote

import (
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/cache"
)

// Client is a shared annotation cache. A Get miss is (nil, nil), not an
// error - cache failures should degrade to recomputation, never fail a
// request.
type Client interface {
	Get(key string) (*cache.Result, error)
	Set(key string, result *cache.Result) error
	Ready() bool
}
