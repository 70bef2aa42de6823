// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package custody

import (
	"errors"
)

// ErrNotFound is returned by directory implementations when no record exists
// for the requested key.
var ErrNotFound = errors.New("record not found")

// Directory is the persistence collaborator mapping user identities to
// custodial accounts and token codes to their descriptors. Implementations
// must be fully initialized, including the issuer record, before they are
// handed to any request-handling component.
type Directory interface {
	User(id string) (User, error)
	SaveUser(user User) error
	Token(code string) (Token, error)
	SaveToken(token Token) error
	Issuer() (Account, error)
}
