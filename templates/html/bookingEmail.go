package templates

import (
	"fmt"
	"html"
)

// RenderBookingConfirmationEmail generates branded HTML for the booking
// confirmation email. All user supplied values are HTML-escaped.
func RenderBookingConfirmationEmail(vehicleName, location string, pricePerDay float64) string {
	safeVehicle := html.EscapeString(vehicleName)
	safeLocation := html.EscapeString(location)

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Booking Confirmed</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f5f7; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: linear-gradient(135deg, #0ea5e9 0%%, #2563eb 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #374151; line-height: 1.6; font-size: 15px; }
    .detail { background-color: #f9fafb; border-radius: 8px; padding: 20px; margin: 20px 0; }
    .detail p { margin: 6px 0; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid #e5e7eb; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Booking Confirmed</h1>
    </div>
    <div class="content">
      <p>Thanks for booking with TravelEase! Here are your booking details:</p>
      <div class="detail">
        <p><strong>Vehicle:</strong> %s</p>
        <p><strong>Location:</strong> %s</p>
        <p><strong>Price per day:</strong> $%.2f</p>
      </div>
      <p>The owner will be in touch shortly to arrange pickup.</p>
    </div>
    <div class="footer">
      <p>&copy; TravelEase</p>
    </div>
  </div>
</body>
</html>`, safeVehicle, safeLocation, pricePerDay)
}
