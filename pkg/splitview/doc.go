// Package splitview provides an embeddable before/after image comparison.
//
// A [Comparer] owns two aligned images and a boundary fraction. Every call to
// [Comparer.Render] composites the images again: pixels left of the boundary
// come from the before image, pixels at and right of it from the after
// image, with a marker band drawn on the seam.
//
// # Basic Usage
//
//	c := splitview.New(splitview.WithFraction(0.3))
//	if err := c.Load("before.png", "after.jpg"); err != nil {
//	    log.Fatal(err)
//	}
//	path, err := c.SaveIn("out", "png") // out/comparison_30%.png
//
// # Options
//
// Alignment defaults to resizing both images to the smaller shared size with
// a bilinear kernel. Use [WithAlign] to crop instead and [WithMarker] to
// change or disable the seam line.
//
// # Watching Inputs
//
// [Comparer.Watch] reloads both images whenever either file changes on disk
// and calls back so the host can write a fresh output:
//
//	err := c.Watch(ctx, "before.png", "after.png", func(ctx context.Context) error {
//	    _, err := c.SaveIn("out", "png")
//	    return err
//	})
package splitview
