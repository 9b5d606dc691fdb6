package access

// RenderMode tells the caller how much of an article to render.
type RenderMode string

const (
	RenderFull               RenderMode = "full"
	RenderPreview            RenderMode = "preview"
	RenderPreviewWithPaywall RenderMode = "preview_with_paywall"
)

// PaywallPrompt selects which call-to-action accompanies a gated preview.
type PaywallPrompt string

const (
	PromptNone            PaywallPrompt = ""
	PromptCreateAccount   PaywallPrompt = "create_account"
	PromptUpgradePremium  PaywallPrompt = "upgrade_premium"
	PromptSignUpSubscribe PaywallPrompt = "sign_up_subscribe"
)

func (p PaywallPrompt) Headline() string {
	switch p {
	case PromptCreateAccount:
		return "You've reached your free article limit"
	case PromptUpgradePremium:
		return "Premium Article"
	case PromptSignUpSubscribe:
		return "Premium Article"
	default:
		return ""
	}
}

func (p PaywallPrompt) CallToAction() string {
	switch p {
	case PromptCreateAccount:
		return "Create a free account to keep reading"
	case PromptUpgradePremium:
		return "Upgrade to Premium"
	case PromptSignUpSubscribe:
		return "Sign Up & Subscribe"
	default:
		return ""
	}
}

// Viewer is the authentication state of the current request.
type Viewer struct {
	Authenticated bool
	Roles         RoleSet
}

func Anonymous() Viewer {
	return Viewer{}
}

func Authenticated(roles RoleSet) Viewer {
	return Viewer{Authenticated: true, Roles: roles}
}

// Decision is the outcome of the paywall policy for one article view.
type Decision struct {
	Mode   RenderMode
	Prompt PaywallPrompt
}
