package filters

// Chain composes filters into a single Filter. Read hooks run in the
// configured order; write hooks run in reverse, so returning traffic
// traverses the chain as a mirror of its inbound path. The first nil
// response on either side drops the packet.
type Chain struct {
	filters []Filter
}

// NewChain returns a Chain running the given filters in order.
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	return len(c.filters)
}

// Read implements Filter.
func (c *Chain) Read(ctx *ReadContext) *ReadResponse {
	for _, filter := range c.filters {
		response := filter.Read(ctx)
		if response == nil {
			return nil
		}
		ctx = &ReadContext{
			Endpoints: response.Endpoints,
			Source:    ctx.Source,
			Contents:  response.Contents,
			Metadata:  response.Metadata,
		}
	}
	return ctx.Response()
}

// Write implements Filter.
func (c *Chain) Write(ctx *WriteContext) *WriteResponse {
	for i := len(c.filters) - 1; i >= 0; i-- {
		response := c.filters[i].Write(ctx)
		if response == nil {
			return nil
		}
		ctx = &WriteContext{
			Endpoint:    ctx.Endpoint,
			Source:      ctx.Source,
			Destination: ctx.Destination,
			Contents:    response.Contents,
			Metadata:    response.Metadata,
		}
	}
	return ctx.Response()
}
