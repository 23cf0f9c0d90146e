package servers

//go:generate oapi-codegen --config=../../../api/oapi-codegen.yml ../../../api/openapi.yml
