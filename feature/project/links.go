package project

// Link is a page shown in the startup banner.
type Link struct {
	Label string
	Path  string
}

// StartPage is opened in the browser once the server is listening.
const StartPage = "quick-order-test.html"

// QuickLinks are the project pages printed in the startup banner.
var QuickLinks = []Link{
	{"Main Site", "index.html"},
	{"Admin Panel", "admin-panel.html"},
	{"🚨 FIX PERMISSIONS", "firebase-rules-implementation.html"},
	{"Firebase Setup Guide", "firebase-setup-guide.html"},
	{"Firebase Permissions Guide", "firebase-permissions-guide.html"},
	{"Order Test", "quick-order-test.html"},
	{"Full Test", "test-order-saving.html"},
	{"OrderManager Test", "test-order-manager.html"},
	{"Order Diagnostic", "order-diagnostic.html"},
	{"Firebase Test", "firebase-test.html"},
}
