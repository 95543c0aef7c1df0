// Package imagegen generates blog images with the Gemini image model.
//
// A generation is a single synchronous request: the user's prompt is wrapped
// in the blog's design guidelines ([BuildPrompt]), optionally accompanied by
// a reference image ([LoadReference]), and sent through a [Generator]. The
// first image in the response is written to disk with [Save].
//
//	key, err := imagegen.ResolveAPIKey(flagKey, os.Getenv(imagegen.APIKeyEnv))
//	gen, err := imagegen.NewGeminiClient(ctx, key)
//	path, err := imagegen.Run(ctx, gen, imagegen.Job{
//	    Prompt:   "Three-tier architecture",
//	    Filename: "public/blog/images/arch.png",
//	    Style:    imagegen.StyleArchitecture,
//	}, logger)
//
// There is no retry, streaming or batching; any failure ends the run.
package imagegen
