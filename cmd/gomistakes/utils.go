package gomistakes

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

// pickBool returns cli when the flag was set on the command line, even to
// false; otherwise the first config layer that sets the key wins.
func pickBool(set, cli bool, local, global *bool) bool {
	if set {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolPtr(v bool) *bool {
	if !v {
		return nil
	}
	return &v
}
