// Package helpers provides test utility functions for the retreat catalog API.
//
// # Requests
//
//	rec := helpers.NewRequest(t, http.MethodGet, "/v1/retreats").
//		WithHeader("If-None-Match", etag).
//		Serve(mux)
//
// # Assertions
//
//	helpers.AssertStatus(t, rec, http.StatusOK)
//	helpers.AssertProblemDetails(t, rec, http.StatusNotFound, model.ErrCodeNotFound)
//	helpers.DecodeData(t, rec, &retreats)
//
// # Pointer Helpers
//
//	max := helpers.IntPtr(500)
package helpers
