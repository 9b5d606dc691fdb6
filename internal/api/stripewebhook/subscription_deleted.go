package stripewebhooks

import (
	"fmt"

	"toadtoe-api/database"
	"toadtoe-api/internal/domain/access"
	"toadtoe-api/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
)

// Cancellation takes paid_reader away again; the account itself is untouched.
func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	var user users.User
	if err := database.DB.Where("subscription_id = ?", sub.ID).First(&user).Error; err != nil {
		// already unlinked; nothing to revoke
		fmt.Println("⚠️ Subscription deleted for unknown user:", sub.ID)
		return nil
	}

	if err := users.RevokeRole(database.DB, user.ID, access.RolePaidReader); err != nil {
		return err
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Update("subscription_id", nil).Error; err != nil {
		return err
	}

	fmt.Println("✅ Premium subscription ended for user", user.ID)
	return nil
}
