// internal/service/templates.go
package service

// Email subjects
const (
	WelcomeSubject = "🚀 Welcome to CampusConnect - You're In!"
	LaunchSubject  = "🎉 CampusConnect is NOW LIVE!"
	UpdateSubject  = "📢 CampusConnect Update: {title}"

	WelcomeTitle = "Welcome to CampusConnect!"
	LaunchTitle  = "CampusConnect is LIVE!"
)

const emailStyle = `
    body { font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f8f9fa; }
    .header { background: linear-gradient(135deg, #0F172A 0%, #10B981 100%); color: white; padding: 40px 30px; border-radius: 12px 12px 0 0; text-align: center; }
    .content { background: white; padding: 40px 30px; border-radius: 0 0 12px 12px; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1); }
    .feature-box { background: #f0fdf4; padding: 20px; margin: 20px 0; border-radius: 8px; border-left: 4px solid #10B981; }
    .footer { text-align: center; margin-top: 30px; padding: 20px; color: #666; font-size: 14px; }
    h1 { margin: 0; font-size: 28px; font-weight: bold; }
    h2 { color: #10B981; margin-top: 0; }
    h4 { color: #333; margin-bottom: 8px; }
    .cta-button { background: #10B981; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block; margin: 20px 0; font-weight: bold; }
`

// WelcomeTemplate is sent when a visitor joins the waitlist.
const WelcomeTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Welcome to CampusConnect</title>
    <style>` + emailStyle + `</style>
</head>
<body>
    <div class="header">
        <h1>🚀 Welcome to CampusConnect!</h1>
        <p style="margin: 0; font-size: 18px; opacity: 0.9;">You're officially on the waitlist!</p>
    </div>
    <div class="content">
        <h2>Hi {first_name}! 👋</h2>
        <p><strong>Congratulations!</strong> You've successfully joined the CampusConnect waitlist. We're thrilled to have you as one of our early supporters!</p>
        <p><strong>What is CampusConnect?</strong></p>
        <p>CampusConnect is the ultimate platform designed to revolutionize campus life. We're building something special that will help students:</p>
        <div class="feature-box">
            <h4>📅 Stay Updated on Campus Events</h4>
            <p>Never miss important events, workshops, and activities happening on campus.</p>
        </div>
        <div class="feature-box">
            <h4>🎭 Discover and Join Club Activities</h4>
            <p>Find clubs that match your interests and connect with like-minded students.</p>
        </div>
        <div class="feature-box">
            <h4>🛠️ Submit and Track Service Requests</h4>
            <p>Easily request maintenance, tech support, and other campus services.</p>
        </div>
        <p><strong>What's Next?</strong></p>
        <p>We're putting the finishing touches on CampusConnect and will notify you the <em>moment</em> it's ready to launch!</p>
        <p>Stay tuned,<br><strong>The CampusConnect Team 🎓</strong></p>
    </div>
    <div class="footer">
        <p>© 2025 CampusConnect by Mahesh</p>
        <p>You're receiving this because you signed up for launch notifications at CampusConnect.</p>
        <p>We promise to only send you important updates - no spam!</p>
    </div>
</body>
</html>`

// LaunchTemplate is broadcast to every active subscriber at launch.
const LaunchTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>CampusConnect is LIVE!</title>
    <style>` + emailStyle + `</style>
</head>
<body>
    <div class="header">
        <h1>🎉 CampusConnect is NOW LIVE!</h1>
        <p>The wait is over - dive into the future of campus life!</p>
    </div>
    <div class="content">
        <h2>Hi {first_name}! 🚀</h2>
        <p>The moment you've been waiting for is here! CampusConnect is officially live and ready to transform your campus experience.</p>
        <div style="text-align: center;">
            <a href="#" class="cta-button">🚀 Launch CampusConnect Now</a>
        </div>
        <h3>🌟 What's Available Right Now:</h3>
        <div class="feature-box">
            <h4>📅 Campus Events Hub</h4>
            <p>Discover upcoming events, workshops, and activities happening on campus.</p>
        </div>
        <div class="feature-box">
            <h4>🎭 Club Directory</h4>
            <p>Find and join clubs that match your interests and passions.</p>
        </div>
        <div class="feature-box">
            <h4>🛠️ Service Requests</h4>
            <p>Submit maintenance requests, tech support, and other campus services.</p>
        </div>
        <p><strong>Ready to get started?</strong> Click the button above and explore everything CampusConnect has to offer!</p>
        <p>Welcome aboard,<br>The CampusConnect Team 🎓</p>
    </div>
    <div class="footer">
        <p>© 2025 CampusConnect by Mahesh</p>
        <p>Need help? Reply to this email or visit our support center.</p>
    </div>
</body>
</html>`

// UpdateTemplate carries an admin-authored title and content.
const UpdateTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>CampusConnect Update: {title}</title>
    <style>` + emailStyle + `</style>
</head>
<body>
    <div class="header">
        <h1>📢 CampusConnect Update</h1>
        <p>Fresh news from the team</p>
    </div>
    <div class="content">
        <h2>Hi {first_name}!</h2>
        <div class="feature-box">
            <h3>{title}</h3>
            <p>{content}</p>
        </div>
        <p>Thank you for staying with us on this journey. More updates are on the way!</p>
        <p>Best,<br>The CampusConnect Team 🎓</p>
    </div>
    <div class="footer">
        <p>© 2025 CampusConnect by Mahesh</p>
        <p>You're receiving this because you signed up for launch notifications at CampusConnect.</p>
    </div>
</body>
</html>`
