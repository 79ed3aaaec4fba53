package app

// User-facing strings live in one place. The application ships a single
// hardcoded locale; swapping it means editing this file, nothing else.
const (
	msgEmptyInventory = "Add some food to your fridge first."
	msgRecipesFailed  = "Something went wrong while generating recipes. Please try again."
	msgScanFailed     = "We couldn't read that image. Please try again."

	msgSignedUp  = "Signed up successfully! Welcome."
	msgLoggedIn  = "Logged in successfully!"
	msgLoggedOut = "You have been logged out."

	msgItemsAddedFmt = "%d item(s) added to the fridge!"
)
