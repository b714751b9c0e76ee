package client

// advancedClient exposes transport-level knobs over a base client.
type advancedClient struct {
	base baseClient
}

// NewAdvancedClient creates a client exposing lower-level controls such as
// retry policy replacement and metrics access.
func NewAdvancedClient(config Config) (AdvancedClient, error) {
	base, err := newBaseClient(config)
	if err != nil {
		return nil, err
	}
	return &advancedClient{base: base}, nil
}

// IsConnected reports whether the client has an active connection.
func (c *advancedClient) IsConnected() bool {
	return c.base.isConnected()
}

// SetRetryPolicy replaces the client's retry behavior for failed operations.
func (c *advancedClient) SetRetryPolicy(policy RetryPolicy) {
	c.base.setRetryPolicy(policy)
}

// GetMetrics returns the metrics collector associated with the client.
func (c *advancedClient) GetMetrics() ClientMetrics {
	return c.base.getMetrics()
}

// Close shuts down the client and releases resources.
func (c *advancedClient) Close() error {
	return c.base.close()
}
