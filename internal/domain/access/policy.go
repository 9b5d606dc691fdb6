package access

// ArticleType is the paywall tier of an article.
type ArticleType string

const (
	ArticleFree ArticleType = "free"
	ArticlePaid ArticleType = "paid"
)

// Decide computes the render mode for one article view.
//
// Precedence:
//  1. admin / reporter            -> full
//  2. paid_reader                 -> full
//  3. free article, authenticated -> full
//  4. free article, anonymous     -> full while the browser counter stays
//     within FreeViewLimit, then the create-account prompt
//  5. paid article                -> the matching paywall prompt
//
// For a qualifying anonymous free view the counter is incremented exactly
// once, whether or not the view ends up behind the paywall. The counter is
// global per browser and does not dedup by article id, so revisiting the same
// free article consumes quota. That mirrors the shipped behavior; see
// DESIGN.md before "fixing" it.
func Decide(articleType ArticleType, viewer Viewer, counter Counter) Decision {
	if viewer.Roles.HasAny(RoleAdmin, RoleReporter) {
		return Decision{Mode: RenderFull, Prompt: PromptNone}
	}

	if viewer.Roles.Has(RolePaidReader) {
		return Decision{Mode: RenderFull, Prompt: PromptNone}
	}

	if articleType == ArticleFree {
		if viewer.Authenticated {
			return Decision{Mode: RenderFull, Prompt: PromptNone}
		}

		// Anonymous free read: spend one unit of quota, inclusive boundary.
		if counter.Increment() <= FreeViewLimit {
			return Decision{Mode: RenderFull, Prompt: PromptNone}
		}
		return Decision{Mode: RenderPreviewWithPaywall, Prompt: PromptCreateAccount}
	}

	// Paid article, no paid entitlement.
	if !viewer.Authenticated {
		return Decision{Mode: RenderPreviewWithPaywall, Prompt: PromptSignUpSubscribe}
	}

	// registered_reader, and also any authenticated user without a recognized
	// role: they already have an account, so the upgrade prompt applies.
	return Decision{Mode: RenderPreviewWithPaywall, Prompt: PromptUpgradePremium}
}
