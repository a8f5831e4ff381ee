package synth

import "github.com/getpostkit/postkit/pkg/postman"

// AttachExamples returns a copy of the collection with generated example
// responses saved on every request item, so a mock server bound to the
// collection has something to serve. Existing saved responses are replaced.
// The counts report requests touched and examples attached.
func AttachExamples(col *postman.Collection, opts ExampleOptions) (*postman.Collection, int, int) {
	out := *col
	var requests, examples int
	out.Items = attachItems(col.Items, opts, &requests, &examples)
	return &out, requests, examples
}

func attachItems(items []postman.Item, opts ExampleOptions, requests, examples *int) []postman.Item {
	out := make([]postman.Item, len(items))
	for i, it := range items {
		switch {
		case it.Kind == postman.KindRequest && it.Request != nil:
			exs := GenerateExamples(it.Name, it.Request, opts)
			responses := make([]postman.Response, len(exs))
			for j, ex := range exs {
				responses[j] = exampleResponse(ex)
			}
			it.Responses = responses
			*requests++
			*examples += len(exs)
		case it.Kind == postman.KindFolder:
			it.Items = attachItems(it.Items, opts, requests, examples)
		}
		out[i] = it
	}
	return out
}

// exampleResponse converts a mock example into the saved-response shape the
// collection document carries.
func exampleResponse(ex postman.MockExample) postman.Response {
	req := &postman.Request{
		Method:  ex.Request.Method,
		URL:     postman.StringURL(ex.Request.URL),
		Headers: ex.Request.Headers,
	}
	if ex.Request.Body != "" {
		req.Body = &postman.Body{Mode: postman.BodyModeRaw, Raw: ex.Request.Body}
	}
	return postman.Response{
		Name:            ex.Name,
		OriginalRequest: req,
		Status:          ex.Response.StatusText,
		Code:            ex.Response.Status,
		Headers:         ex.Response.Headers,
		Body:            ex.Response.Body,
		PreviewLanguage: ex.Response.Language,
	}
}
