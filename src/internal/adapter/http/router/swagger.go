package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>SecureBank Core API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "SecureBank Core API",
    "version": "1.0.0"
  },
  "paths": {
    "/register-account": {
      "post": {
        "summary": "Register a new account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["fullName", "email", "phone", "address", "initialDeposit", "password", "confirmPassword"],
                "properties": {
                  "fullName": {"type": "string"},
                  "email": {"type": "string"},
                  "phone": {"type": "string"},
                  "address": {"type": "string"},
                  "initialDeposit": {"type": "string", "description": "Minimum 100"},
                  "password": {"type": "string", "minLength": 6},
                  "confirmPassword": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Created"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/login": {
      "post": {
        "summary": "Authenticate with account number and password",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "password"],
                "properties": {
                  "accountNumber": {"type": "string"},
                  "password": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Authenticated"},
          "401": {"description": "Invalid account number or password"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/get-account": {
      "get": {
        "summary": "Get account by account number",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "accountNumber", "in": "query", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Account"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/get-accounts": {
      "get": {
        "summary": "List account summaries for the recipient picker",
        "security": [{"BasicAuth": []}],
        "responses": {
          "200": {"description": "Account summaries"}
        }
      }
    },
    "/deposit-funds": {
      "post": {
        "summary": "Deposit funds into an account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "amount"],
                "properties": {
                  "accountNumber": {"type": "string"},
                  "amount": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Funds deposited"},
          "400": {"description": "Validation error"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/withdraw-funds": {
      "post": {
        "summary": "Withdraw funds from an account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "amount"],
                "properties": {
                  "accountNumber": {"type": "string"},
                  "amount": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Funds withdrawn"},
          "400": {"description": "Validation error or insufficient funds"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/transfer-funds": {
      "post": {
        "summary": "Transfer funds between two accounts",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["fromAccount", "toAccount", "amount"],
                "properties": {
                  "fromAccount": {"type": "string"},
                  "toAccount": {"type": "string"},
                  "amount": {"type": "string"},
                  "description": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Transfer completed"},
          "400": {"description": "Validation error or insufficient funds"},
          "404": {"description": "Recipient account not found"}
        }
      }
    },
    "/get-statement": {
      "get": {
        "summary": "Get the filtered account statement",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "accountNumber", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "filter", "in": "query", "schema": {"type": "string", "enum": ["all", "deposit", "withdrawal", "transfer"]}}
        ],
        "responses": {
          "200": {"description": "Statement"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/export-statement": {
      "get": {
        "summary": "Download the statement as csv, pdf or xlsx",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "accountNumber", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "filter", "in": "query", "schema": {"type": "string", "enum": ["all", "deposit", "withdrawal", "transfer"]}},
          {"name": "format", "in": "query", "schema": {"type": "string", "enum": ["csv", "pdf", "xlsx"]}}
        ],
        "responses": {
          "200": {"description": "Statement file"},
          "404": {"description": "Account not found"}
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {
        "type": "http",
        "scheme": "basic"
      }
    }
  }
}`
