package handler

import "github.com/stretchr/testify/mock"

// anyCtx matches the request-scoped context Echo derives per request.
var anyCtx = mock.Anything
