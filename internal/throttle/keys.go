package throttle

// AddressKey is the throttle key for a client network address.
func AddressKey(addr string) string {
	return "ip:" + addr
}

// UsernameKey is the throttle key for a submitted username. Usernames are
// case-sensitive, so the key uses the name exactly as submitted.
func UsernameKey(username string) string {
	return "user:" + username
}
