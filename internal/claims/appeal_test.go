package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppealDraftTemplates(t *testing.T) {
	t.Run("empty box references the weight discrepancy", func(t *testing.T) {
		draft := AppealDraft(ReasonEmptyBox, "114-9283-001")
		assert.Contains(t, draft, "114-9283-001")
		assert.Contains(t, draft, "shipped weight")
		assert.Contains(t, draft, "returned parcel weight")
	})

	t.Run("damaged embeds the identifier", func(t *testing.T) {
		draft := AppealDraft(ReasonDamaged, "207-5511-002")
		assert.Contains(t, draft, "207-5511-002")
		assert.Contains(t, draft, "damaged")
	})

	t.Run("switched embeds the identifier", func(t *testing.T) {
		draft := AppealDraft(ReasonSwitched, "339-0042-003")
		assert.Contains(t, draft, "339-0042-003")
		assert.Contains(t, draft, "not the item")
	})
}

func TestAppealDraftRejections(t *testing.T) {
	t.Run("unknown reason", func(t *testing.T) {
		draft := AppealDraft("FOO", "114-9283-001")
		assert.Contains(t, draft, "unsupported reason")
		assert.Contains(t, draft, "FOO")
	})

	t.Run("invalid order ID wins regardless of reason", func(t *testing.T) {
		for _, reason := range []string{ReasonEmptyBox, "FOO", ""} {
			draft := AppealDraft(reason, "123456")
			assert.Contains(t, draft, "order ID must match", "reason %q", reason)
		}
	})

	t.Run("empty order ID", func(t *testing.T) {
		draft := AppealDraft(ReasonEmptyBox, "")
		assert.Contains(t, draft, "order ID must match")
	})
}

func TestValidReason(t *testing.T) {
	assert.True(t, ValidReason(ReasonEmptyBox))
	assert.True(t, ValidReason(ReasonDamaged))
	assert.True(t, ValidReason(ReasonSwitched))
	assert.False(t, ValidReason("FOO"))
	assert.False(t, ValidReason(""))
	assert.False(t, ValidReason("empty_box")) // case-sensitive closed set
}
