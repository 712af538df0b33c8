package course

import "testing"

func TestNormalizeForReview(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"PENDING", StatusPending},
		{"APPROVED", StatusApproved},
		{"REJECTED", StatusRejected},
		{"", StatusPending},
		{"ACTIVE", StatusPending},
		{"active", StatusPending},
		{"  Active  ", StatusPending},
		{"approved", StatusApproved},
	}
	for _, tc := range cases {
		if got := NormalizeForReview(tc.raw); got != tc.want {
			t.Errorf("NormalizeForReview(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeForListing(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"APPROVED", StatusApproved},
		{"PENDING", StatusPending},
		{"REJECTED", StatusRejected},
		{"", StatusApproved},
		{"ACTIVE", StatusApproved},
		{"active", StatusApproved},
	}
	for _, tc := range cases {
		if got := NormalizeForListing(tc.raw); got != tc.want {
			t.Errorf("NormalizeForListing(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

// Legacy rows are visible to students yet queue up for admin review. They can
// never read as rejected from either view.
func TestLegacyRowsAreVisibleButPendingReview(t *testing.T) {
	for _, raw := range []string{"", "ACTIVE", "active", " ACTIVE "} {
		if !PubliclyVisible(raw) {
			t.Errorf("PubliclyVisible(%q) = false, want true", raw)
		}
		if NormalizeForReview(raw) != StatusPending {
			t.Errorf("NormalizeForReview(%q) = %q, want PENDING", raw, NormalizeForReview(raw))
		}
		if NormalizeForReview(raw) == StatusRejected || NormalizeForListing(raw) == StatusRejected {
			t.Errorf("legacy status %q normalized to REJECTED", raw)
		}
	}
}

func TestPubliclyVisible(t *testing.T) {
	if PubliclyVisible(StatusPending) {
		t.Error("pending course should not be publicly visible")
	}
	if PubliclyVisible(StatusRejected) {
		t.Error("rejected course should not be publicly visible")
	}
	if !PubliclyVisible(StatusApproved) {
		t.Error("approved course should be publicly visible")
	}
}

func TestVideoPlayable(t *testing.T) {
	cases := []struct {
		course string
		video  string
		want   bool
	}{
		{StatusApproved, StatusApproved, true},
		{StatusApproved, "ACTIVE", true},
		{"", "", true},
		{StatusApproved, StatusPending, false},
		{StatusPending, StatusApproved, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
	}
	for _, tc := range cases {
		if got := VideoPlayable(tc.course, tc.video); got != tc.want {
			t.Errorf("VideoPlayable(%q, %q) = %v, want %v", tc.course, tc.video, got, tc.want)
		}
	}
}

func TestReviewBucketStatuses(t *testing.T) {
	pending := ReviewBucketStatuses("pending")
	if len(pending) != 3 {
		t.Fatalf("pending bucket statuses = %v, want 3 entries", pending)
	}
	hasLegacy := false
	for _, s := range pending {
		if s == "ACTIVE" || s == "" {
			hasLegacy = true
		}
	}
	if !hasLegacy {
		t.Errorf("pending bucket %v should claim legacy rows", pending)
	}

	approved := ReviewBucketStatuses("approved")
	if len(approved) != 1 || approved[0] != StatusApproved {
		t.Errorf("approved bucket = %v, want exact-match [APPROVED]", approved)
	}

	rejected := ReviewBucketStatuses("rejected")
	if len(rejected) != 1 || rejected[0] != StatusRejected {
		t.Errorf("rejected bucket = %v, want exact-match [REJECTED]", rejected)
	}

	if got := ReviewBucketStatuses("bogus"); got != nil {
		t.Errorf("unknown bucket = %v, want nil", got)
	}
}

func TestValidReviewBucket(t *testing.T) {
	for _, b := range []string{"pending", "PENDING", "approved", "rejected", " Rejected "} {
		if !ValidReviewBucket(b) {
			t.Errorf("ValidReviewBucket(%q) = false, want true", b)
		}
	}
	for _, b := range []string{"", "ACTIVE", "all", "deleted"} {
		if ValidReviewBucket(b) {
			t.Errorf("ValidReviewBucket(%q) = true, want false", b)
		}
	}
}
