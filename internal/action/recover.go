package action

import "context"

// ErrorContent is the default display for a caught producer failure.
func ErrorContent(err error) string {
	return "Something went wrong: " + err.Error()
}

// Recover wraps p so that its failures become ordinary content rendered by
// render (ErrorContent when nil). The wrapped producer never returns an error.
func Recover(p Producer, render func(error) string) Producer {
	if render == nil {
		render = ErrorContent
	}
	return func(ctx context.Context, in Inputs) (string, error) {
		content, err := p(ctx, in)
		if err != nil {
			return render(err), nil
		}
		return content, nil
	}
}
