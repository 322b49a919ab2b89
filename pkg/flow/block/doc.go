/*
Package block defines the execution protocol bound to node type tags and
ships the built-in blocks.

Every block exposes one contract: Run(ctx, inputs) -> Result, where inputs
maps target handle ids to the values produced upstream. The engine looks
blocks up by type tag in an open registry, so new node types plug in with
a Register call and zero engine changes:

	block.Register("my_custom_type", func(nodeID string, cfg config.Config) (block.Block, error) {
	    return &myBlock{threshold: cfg.Float("threshold", 0.5)}, nil
	})

Built-in type tags:

	scalar_text_input    configured text literal
	scalar_number_input  configured numeric literal
	math_operation       add/subtract/multiply/divide over inputs "a","b"
	text_join            a + separator + b
	text_output          terminal sink with display rendering
	number_output        terminal numeric sink with display rendering

Blocks are pure: no state survives a run, and identical inputs yield
identical results. Failures are ordinary errors inside the Result; a block
never decides what happens downstream — propagation is the engine's job.
*/
package block
