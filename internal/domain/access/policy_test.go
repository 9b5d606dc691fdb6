package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	n int
}

func (f *fakeCounter) Count() int     { return f.n }
func (f *fakeCounter) Increment() int { f.n++; return f.n }

func TestDecidePrecedence(t *testing.T) {
	tests := []struct {
		name        string
		articleType ArticleType
		viewer      Viewer
		mode        RenderMode
		prompt      PaywallPrompt
	}{
		{
			name:        "admin sees paid article in full",
			articleType: ArticlePaid,
			viewer:      Authenticated(RoleSet{RoleAdmin}),
			mode:        RenderFull,
		},
		{
			name:        "reporter sees paid article in full",
			articleType: ArticlePaid,
			viewer:      Authenticated(RoleSet{RoleReporter}),
			mode:        RenderFull,
		},
		{
			name:        "paid reader sees paid article in full",
			articleType: ArticlePaid,
			viewer:      Authenticated(RoleSet{RolePaidReader}),
			mode:        RenderFull,
		},
		{
			name:        "paid_reader dominates registered_reader",
			articleType: ArticlePaid,
			viewer:      Authenticated(RoleSet{RoleRegisteredReader, RolePaidReader}),
			mode:        RenderFull,
		},
		{
			name:        "authenticated viewer with no roles reads free article",
			articleType: ArticleFree,
			viewer:      Authenticated(nil),
			mode:        RenderFull,
		},
		{
			name:        "registered reader hits upgrade prompt on paid article",
			articleType: ArticlePaid,
			viewer:      Authenticated(RoleSet{RoleRegisteredReader}),
			mode:        RenderPreviewWithPaywall,
			prompt:      PromptUpgradePremium,
		},
		{
			name:        "authenticated viewer with no roles falls through to upgrade prompt",
			articleType: ArticlePaid,
			viewer:      Authenticated(nil),
			mode:        RenderPreviewWithPaywall,
			prompt:      PromptUpgradePremium,
		},
		{
			name:        "anonymous viewer never sees a paid article in full",
			articleType: ArticlePaid,
			viewer:      Anonymous(),
			mode:        RenderPreviewWithPaywall,
			prompt:      PromptSignUpSubscribe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.articleType, tt.viewer, &fakeCounter{})
			assert.Equal(t, tt.mode, d.Mode)
			assert.Equal(t, tt.prompt, d.Prompt)
		})
	}
}

func TestDecideAnonymousFreeQuota(t *testing.T) {
	c := &fakeCounter{}

	// First three distinct free articles render in full.
	for i := 0; i < FreeViewLimit; i++ {
		d := Decide(ArticleFree, Anonymous(), c)
		require.Equal(t, RenderFull, d.Mode, "view %d should be free", i+1)
	}
	assert.Equal(t, FreeViewLimit, c.Count())

	// Fourth view flips to the create-account prompt.
	d := Decide(ArticleFree, Anonymous(), c)
	assert.Equal(t, RenderPreviewWithPaywall, d.Mode)
	assert.Equal(t, PromptCreateAccount, d.Prompt)
}

func TestDecideCounterDoesNotDedupByArticle(t *testing.T) {
	// Revisiting the same free article spends quota each time. This is the
	// shipped behavior, not a recommendation.
	c := &fakeCounter{}
	for i := 0; i < FreeViewLimit; i++ {
		Decide(ArticleFree, Anonymous(), c)
	}
	d := Decide(ArticleFree, Anonymous(), c)
	assert.Equal(t, RenderPreviewWithPaywall, d.Mode)
	assert.Equal(t, FreeViewLimit+1, c.Count())
}

func TestDecidePaidArticleDoesNotSpendQuota(t *testing.T) {
	c := &fakeCounter{}
	Decide(ArticlePaid, Anonymous(), c)
	assert.Equal(t, 0, c.Count())
}

func TestDecideAuthenticatedFreeDoesNotSpendQuota(t *testing.T) {
	c := &fakeCounter{}
	Decide(ArticleFree, Authenticated(RoleSet{RoleRegisteredReader}), c)
	assert.Equal(t, 0, c.Count())
}

func TestPromptCopy(t *testing.T) {
	assert.Equal(t, "Premium Article", PromptSignUpSubscribe.Headline())
	assert.Equal(t, "Sign Up & Subscribe", PromptSignUpSubscribe.CallToAction())
	assert.Equal(t, "Upgrade to Premium", PromptUpgradePremium.CallToAction())
	assert.Equal(t, "Create a free account to keep reading", PromptCreateAccount.CallToAction())
	assert.Empty(t, PromptNone.Headline())
}

func TestRoleSet(t *testing.T) {
	rs := RoleSet{RoleReader, RoleReporter}
	assert.True(t, rs.Has(RoleReporter))
	assert.False(t, rs.Has(RoleAdmin))
	assert.True(t, rs.HasAny(RoleAdmin, RoleReporter))
	assert.False(t, RoleSet(nil).HasAny(RoleAdmin, RoleReporter))

	assert.True(t, ValidRole("paid_reader"))
	assert.False(t, ValidRole("owner"))
}
