package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "ProjectBoard API Documentation",
        "title": "ProjectBoard API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api/v1",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/v1/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register Account",
                "description": "Create a new account and seed it with sample boards",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "account",
                        "description": "Account details",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "email": {
                                    "type": "string",
                                    "example": "user@example.com"
                                },
                                "password": {
                                    "type": "string",
                                    "example": "correct-horse-battery"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Account created"
                    },
                    "409": {
                        "description": "Email already registered"
                    }
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "User Login",
                "description": "Login with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "description": "Login credentials",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "email": {
                                    "type": "string",
                                    "example": "user@example.com"
                                },
                                "password": {
                                    "type": "string",
                                    "example": "correct-horse-battery"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Login successful"
                    },
                    "401": {
                        "description": "Invalid credentials"
                    }
                }
            }
        },
        "/api/v1/workspaces": {
            "get": {
                "tags": ["Workspaces"],
                "summary": "List Workspaces",
                "description": "List the caller's workspaces ordered by position",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "Workspace list"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            },
            "post": {
                "tags": ["Workspaces"],
                "summary": "Create Workspace",
                "description": "Create a workspace appended at the end of the caller's board list",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {
                        "description": "Workspace created"
                    },
                    "400": {
                        "description": "Validation failed"
                    }
                }
            }
        },
        "/api/v1/workspaces/{workspaceId}/columns": {
            "get": {
                "tags": ["Columns"],
                "summary": "List Columns",
                "description": "List a workspace's columns ordered by position",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "Column list"
                    },
                    "403": {
                        "description": "Workspace belongs to another user"
                    }
                }
            },
            "post": {
                "tags": ["Columns"],
                "summary": "Create Column",
                "description": "Create a column appended at the end of the workspace",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {
                        "description": "Column created"
                    },
                    "404": {
                        "description": "Workspace not found"
                    }
                }
            }
        },
        "/api/v1/workspaces/{workspaceId}/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List Tasks",
                "description": "List a workspace's tasks with assignees and tags",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "Task list"
                    },
                    "403": {
                        "description": "Workspace belongs to another user"
                    }
                }
            }
        },
        "/api/v1/tasks/{id}": {
            "put": {
                "tags": ["Tasks"],
                "summary": "Update Task",
                "description": "Update task fields; a different column_id moves the task",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "Task updated"
                    },
                    "404": {
                        "description": "Task not found"
                    }
                }
            }
        },
        "/api/v1/tasks/{id}/tags/{tagId}": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Attach Tag",
                "description": "Attach one of the caller's tags to the task",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "Tag attached, task returned"
                    },
                    "403": {
                        "description": "Task or tag belongs to another user"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "ProjectBoard API",
	Description:      "ProjectBoard API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
