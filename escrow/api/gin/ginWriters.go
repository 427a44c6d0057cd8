package gin

type ginWriter struct{}

// Write will output the message using mx-chain-logger-go's logger
func (gv *ginWriter) Write(p []byte) (n int, err error) {
	trimmed := trimNewLine(p)
	log.Debug("gin server", "message", string(trimmed))

	return len(p), nil
}

type ginErrorWriter struct{}

// Write will output the error using mx-chain-logger-go's logger
func (gev *ginErrorWriter) Write(p []byte) (n int, err error) {
	trimmed := trimNewLine(p)
	log.Debug("gin server", "error", string(trimmed))

	return len(p), nil
}

func trimNewLine(p []byte) []byte {
	if len(p) > 0 && p[len(p)-1] == '\n' {
		return p[:len(p)-1]
	}

	return p
}
