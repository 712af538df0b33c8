package course

import "strings"

// Review states shared by Course and Video rows.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// statusLegacyActive is the status literal written by the pre-review version
// of the platform. Rows holding it (or an empty status) predate the approval
// workflow: they count as pending for the admin review queue but stay
// publicly visible so no backfill migration is needed.
const statusLegacyActive = "ACTIVE"

func isLegacy(raw string) bool {
	s := strings.ToUpper(strings.TrimSpace(raw))
	return s == "" || s == statusLegacyActive
}

// NormalizeForReview maps a raw stored status into a review bucket.
// Legacy rows normalize to PENDING; they never normalize to REJECTED.
func NormalizeForReview(raw string) string {
	if isLegacy(raw) {
		return StatusPending
	}
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeForListing maps a raw stored status for public-catalog purposes.
// Legacy rows count as APPROVED here.
func NormalizeForListing(raw string) string {
	if isLegacy(raw) {
		return StatusApproved
	}
	return strings.ToUpper(strings.TrimSpace(raw))
}

// PubliclyVisible reports whether a raw status makes an entity eligible for
// the student-facing catalog.
func PubliclyVisible(raw string) bool {
	return NormalizeForListing(raw) == StatusApproved
}

// VideoPlayable reports whether a video may be played by students: both the
// parent course and the video itself must be approved (or legacy-equivalent).
func VideoPlayable(courseRaw, videoRaw string) bool {
	return PubliclyVisible(courseRaw) && PubliclyVisible(videoRaw)
}

// ReviewBucketStatuses returns the raw status values belonging to a review
// bucket. The pending bucket claims legacy rows; the approved and rejected
// buckets are exact-match only, so a legacy row never shows up as rejected
// even though the public listing treats it as approved.
func ReviewBucketStatuses(bucket string) []string {
	switch strings.ToUpper(strings.TrimSpace(bucket)) {
	case StatusPending:
		return []string{StatusPending, statusLegacyActive, ""}
	case StatusApproved:
		return []string{StatusApproved}
	case StatusRejected:
		return []string{StatusRejected}
	default:
		return nil
	}
}

// ListingStatuses returns the raw status values visible in the public catalog.
func ListingStatuses() []string {
	return []string{StatusApproved, statusLegacyActive, ""}
}

// ValidReviewBucket reports whether the given bucket name is one of the three
// review states.
func ValidReviewBucket(bucket string) bool {
	switch strings.ToUpper(strings.TrimSpace(bucket)) {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
