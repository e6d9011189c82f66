// Package project describes the web project the dev server is started in.
//
// # Checklist
//
// Before the listener is opened the working directory is checked against a
// fixed list of files:
//
//   - Required: index.html. A missing required file aborts startup.
//   - Optional: js/order-manager.js and the order test pages. Missing
//     optional files only produce a note.
//
// # Quick Links
//
// QuickLinks lists the pages printed in the startup banner, and StartPage is
// the page opened in the browser.
package project
