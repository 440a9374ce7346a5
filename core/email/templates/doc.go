// Package templates renders templ components into HTML email bodies.
//
// Define the email in a .templ file:
//
//	templ WelcomeEmail(name string) {
//		<h1>Welcome, { name }!</h1>
//		<p>Thanks for joining us.</p>
//	}
//
// Then render it into a message:
//
//	import (
//		"github.com/dmitrymomot/mailkit/core/email"
//		"github.com/dmitrymomot/mailkit/core/email/templates"
//	)
//
//	msg := email.NewMessage("app@example.com", "user@example.com", "Welcome!")
//	msg, err := templates.WithHTML(ctx, msg, myapp.WelcomeEmail("John"))
//	if err != nil {
//		return err
//	}
//
// Render returns the HTML string directly when the body is needed
// elsewhere. Rendering failures wrap email.ErrInvalidParams.
//
// The Render function uses strings.Builder so a rendered body is built in a
// single buffer.
package templates
