// Package synth generates plausible placeholder data for collections.
//
// It covers four concerns, all pure functions over their inputs:
//
//   - ValueFor/DescriptionFor synthesize a literal value and prose
//     description for a parameter name via an ordered rule table.
//   - ExtractVariables walks a document for {{name}} references;
//     EnvironmentVariables turns the result into environment rows with
//     heuristic values and secret classification.
//   - Generator synthesizes query parameters, request bodies, headers, and
//     path variables for a request, controlled by a Config of booleans.
//   - GenerateExamples builds a success response plus canned error responses
//     for a request, for pre-populating mock servers.
//
// The rule tables are ordered and first-match-wins. The ordering is load
// bearing: reordering entries changes outputs that tests pin down.
package synth
