package emailtpl

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts the stock templates on first boot. Existing rows are left
// alone so admin edits survive restarts.
func Seed(db *gorm.DB) error {
	defaults := []EmailTemplate{
		{Key: KeyWelcome, Subject: "Welcome to ToadToe!", HTML: welcomeHTML},
		{Key: KeyConfirmEmail, Subject: "Welcome to ToadToe - Confirm your email", HTML: confirmHTML},
		{Key: KeyIntroduction, Subject: "Discover ToadToe", HTML: introductionHTML},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error
}

const welcomeHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
  </head>
  <body style="margin: 0; padding: 0; background-color: #ffffff; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif;">
    <table width="100%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <tr>
        <td>
          <h1 style="color: #1e293b; font-size: 28px; font-weight: bold; margin: 40px 0; padding: 0;">
            Welcome to ToadToe, {{name}}!
          </h1>
          <p style="color: #333; font-size: 14px; line-height: 1.6; margin: 24px 0;">
            Thank you for joining ToadToe - your source for financial market insights.
          </p>
          <p style="color: #333; font-size: 14px; line-height: 1.6; margin: 24px 0;">
            Your account has been successfully created and you can now access all our content.
          </p>
          <div style="margin: 32px 0;">
            <a href="{{link}}"
               target="_blank"
               style="display: inline-block; background-color: #2563eb; color: #ffffff; padding: 14px 32px; border-radius: 8px; text-decoration: none; font-weight: bold; font-size: 16px;">
               Start Reading
            </a>
          </div>
          <div style="margin-top: 40px; padding-top: 20px; border-top: 1px solid #eee;">
            <p style="color: #898989; font-size: 12px; line-height: 1.6; margin: 12px 0;">
              <a href="{{link}}" target="_blank" style="color: #898989; text-decoration: underline;">ToadToe</a><br>
              Your source for financial market insights<br>
              Email: contact@toadtoe.online
            </p>
          </div>
        </td>
      </tr>
    </table>
  </body>
</html>`

const confirmHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
  </head>
  <body style="margin: 0; padding: 0; background-color: #ffffff; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif;">
    <table width="100%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <tr>
        <td>
          <h1 style="color: #1e293b; font-size: 28px; font-weight: bold; margin: 40px 0; padding: 0;">
            Welcome to ToadToe
          </h1>
          <p style="color: #333; font-size: 14px; line-height: 1.6; margin: 24px 0;">
            Thank you for signing up! Please confirm your email address to get started with ToadToe.
          </p>
          <div style="margin: 32px 0;">
            <a href="{{link}}"
               target="_blank"
               style="display: inline-block; background-color: #2563eb; color: #ffffff; padding: 14px 32px; border-radius: 8px; text-decoration: none; font-weight: bold; font-size: 16px;">
              Confirm Email Address
            </a>
          </div>
          <p style="color: #333; font-size: 14px; line-height: 1.6; margin: 24px 0 14px 0;">
            Or, copy and paste this confirmation code:
          </p>
          <div style="display: block; padding: 16px; background-color: #f4f4f4; border-radius: 5px; border: 1px solid #eee; color: #333; font-family: monospace; font-size: 16px; word-break: break-all;">
            {{token}}
          </div>
          <p style="color: #ababab; font-size: 14px; line-height: 1.6; margin: 24px 0;">
            If you didn't sign up for ToadToe, you can safely ignore this email.
          </p>
          <div style="margin-top: 40px; padding-top: 20px; border-top: 1px solid #eee;">
            <p style="color: #898989; font-size: 12px; line-height: 1.6; margin: 12px 0;">
              ToadToe<br>
              Your source for financial market insights
            </p>
          </div>
        </td>
      </tr>
    </table>
  </body>
</html>`

const introductionHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
  </head>
  <body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.7; color: #1f2937; margin: 0; padding: 0;">
    <div style="max-width: 650px; margin: 40px auto; background: white; border-radius: 16px; overflow: hidden;">
      <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 48px 32px; text-align: center; color: white;">
        <h1 style="margin: 0 0 12px; font-size: 32px; font-weight: 700;">Welcome to ToadToe</h1>
        <p style="margin: 0; font-size: 18px;">Your source for financial market insights</p>
      </div>
      <div style="padding: 48px 40px;">
        <p style="font-size: 18px; color: #4b5563;">{{greeting}},</p>
        <p style="font-size: 16px; color: #4b5563;">
          ToadToe brings you daily coverage of commodities, cryptocurrencies, indices and equities,
          written by our team of market reporters.
        </p>
        <div style="margin: 32px 0; text-align: center;">
          <a href="{{link}}"
             target="_blank"
             style="display: inline-block; background-color: #667eea; color: #ffffff; padding: 14px 32px; border-radius: 8px; text-decoration: none; font-weight: bold; font-size: 16px;">
            Start Reading
          </a>
        </div>
      </div>
    </div>
  </body>
</html>`
