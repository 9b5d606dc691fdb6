package stripewebhooks

import (
	"fmt"
	"strconv"

	"toadtoe-api/database"
	"toadtoe-api/internal/domain/access"
	"toadtoe-api/internal/domain/billing"
	"toadtoe-api/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
)

// A completed checkout is what turns a registered reader into a paid one.
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	if session.ClientReferenceID == "" {
		return fmt.Errorf("missing client_reference_id")
	}
	userID64, err := strconv.ParseUint(session.ClientReferenceID, 10, 64)
	if err != nil {
		return fmt.Errorf("bad client_reference_id: %w", err)
	}
	userID := uint(userID64)

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return fmt.Errorf("user %d not found: %w", userID, err)
	}

	if session.Subscription != nil {
		if err := database.DB.Model(&users.User{}).
			Where("id = ?", userID).
			Update("subscription_id", session.Subscription.ID).Error; err != nil {
			return err
		}
	}

	if err := users.GrantRole(database.DB, userID, access.RolePaidReader); err != nil {
		return err
	}

	payment := billing.Payment{
		UserID:    userID,
		AmountEUR: float64(session.AmountTotal) / 100,
		Status:    "paid",
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		// the role grant already happened; a lost history row is not retryable
		fmt.Println("❌ Failed to record payment:", err)
	}

	fmt.Println("✅ Premium subscription activated for user", userID)
	return nil
}
