// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven ports
// (adapters):
//
//   - Paginate drives a cursor loop over any page-returning port method
//   - Resolver finds a named resource under a parent or creates it once
//   - PathResolver applies Resolver segment by segment along a folder path
//   - Uploader decides between updating and creating a remote file
//
// Every blocking call takes a context.Context, which is also checked
// between page fetches.
package services
