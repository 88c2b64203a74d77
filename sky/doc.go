// SPDX-License-Identifier: MIT

// Package sky models the product around the constellation builder: a sky is a
// shareable page owned by one creator, and every star in it is a short wish
// left by a visitor at a random position.
//
// The package owns the records (Sky, Star), their validation, paging, the
// growth tiers and the Service that ties a Repository, a Notifier and
// constellation.BuildDetailed together. Storage and transport live
// elsewhere (packages store, notify and server).
package sky
