package dedupe

// Package dedupe provides the shared singleflight group used to deduplicate
// concurrent snapshot reads. Clients poll the session endpoint while waiting
// for the turn to pass; a centralized singleflight.Group ensures that one
// load serves every concurrent poller of the same session.

import "golang.org/x/sync/singleflight"

// SnapshotGroup deduplicates snapshot builds keyed by join code
// (see keys.SnapshotKey).
var SnapshotGroup singleflight.Group
