// Package docs registra la descripción OpenAPI que sirve /swagger/*.
// Se mantiene a mano junto con las anotaciones de los handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/appointments": {
            "get": {
                "description": "Lista los turnos del usuario en orden de alta. ` + "`" + `q` + "`" + ` busca en doctor y especialidad; ` + "`" + `view` + "`" + ` separa próximos de pasados.",
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Listar turnos",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "Texto libre", "name": "q", "in": "query"},
                    {"type": "string", "description": "all, upcoming, past", "name": "view", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/appointments.appointmentResponse"}}},
                    "400": {"description": "view inválido", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Registra un turno médico. El status arranca en ` + "`" + `upcoming` + "`" + ` si no se envía.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Reservar turno",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"description": "Datos del turno; date en formato YYYY-MM-DD", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/appointments.appointmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/appointments.appointmentResponse"}},
                    "400": {"description": "invalid json / validación", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/appointments/{appointmentID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Obtener turno",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "ID del turno", "name": "appointmentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/appointments.appointmentResponse"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "appointment not found", "schema": {"type": "string"}}
                }
            },
            "put": {
                "description": "Reemplaza todos los campos del turno, incluido status.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Reemplazar turno",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "ID del turno", "name": "appointmentID", "in": "path", "required": true},
                    {"description": "Turno completo", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/appointments.appointmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/appointments.appointmentResponse"}},
                    "400": {"description": "invalid json / validación", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "appointment not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["appointments"],
                "summary": "Borrar turno",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "ID del turno", "name": "appointmentID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "appointment not found", "schema": {"type": "string"}}
                }
            }
        },
        "/auth/forgot": {
            "post": {
                "description": "Genera un código de recuperación para el email. Responde 202 aunque el email no exista.",
                "consumes": ["application/json"],
                "tags": ["auth"],
                "summary": "Recuperar contraseña",
                "parameters": [
                    {"description": "Email de la cuenta", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.forgotPasswordRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted"},
                    "400": {"description": "Please enter a valid email", "schema": {"type": "string"}}
                }
            }
        },
        "/auth/password": {
            "post": {
                "description": "Exige la contraseña actual; la nueva debe tener al menos 8 caracteres y coincidir con la confirmación.",
                "consumes": ["application/json"],
                "tags": ["auth"],
                "summary": "Cambiar contraseña",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"description": "Contraseñas", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.changePasswordRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "validación", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized / Current password is incorrect", "schema": {"type": "string"}}
                }
            }
        },
        "/auth/signin": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Iniciar sesión",
                "parameters": [
                    {"description": "Credenciales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.signInRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/account.sessionResponse"}},
                    "400": {"description": "validación", "schema": {"type": "string"}},
                    "401": {"description": "mensaje del proveedor", "schema": {"type": "string"}}
                }
            }
        },
        "/auth/signout": {
            "post": {
                "description": "Revoca el token actual y borra la sesión guardada.",
                "tags": ["auth"],
                "summary": "Cerrar sesión",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "description": "Valida el formulario (email, contraseña de al menos 6 caracteres, confirmación) y crea la cuenta en el proveedor de auth.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registrar usuario",
                "parameters": [
                    {"description": "Datos de registro", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.signUpRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/account.sessionResponse"}},
                    "400": {"description": "validación", "schema": {"type": "string"}},
                    "409": {"description": "email ya registrado", "schema": {"type": "string"}}
                }
            }
        },
        "/calendar": {
            "get": {
                "description": "Devuelve por día los markers (medication, appointment) y marca el día seleccionado. Sin ` + "`" + `selected` + "`" + ` se usa hoy.",
                "produces": ["application/json"],
                "tags": ["calendar"],
                "summary": "Días marcados del calendario",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "selected", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/calendar.monthResponse"}},
                    "400": {"description": "invalid selected", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/calendar/days/{date}": {
            "get": {
                "description": "Medicaciones vigentes y turnos de un día.",
                "produces": ["application/json"],
                "tags": ["calendar"],
                "summary": "Agenda del día",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/calendar.agendaResponse"}},
                    "400": {"description": "invalid date", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/calendar/week": {
            "get": {
                "description": "Semana (lunes a domingo) que contiene la fecha; sin ` + "`" + `date` + "`" + ` se usa hoy.",
                "produces": ["application/json"],
                "tags": ["calendar"],
                "summary": "Tira semanal",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/calendar.weekResponse"}},
                    "400": {"description": "invalid date", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/me": {
            "get": {
                "description": "Devuelve el usuario guardado de la sesión actual.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Usuario actual",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/account.User"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            },
            "patch": {
                "description": "Patch parcial del perfil; solo se envían al proveedor los campos presentes.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Actualizar perfil",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"description": "Campos a modificar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.patchMeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/account.User"}},
                    "400": {"description": "validación", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/medications": {
            "get": {
                "description": "Lista las medicaciones del usuario en orden de alta. ` + "`" + `q` + "`" + ` filtra por nombre; ` + "`" + `status` + "`" + ` por vigencia.",
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Listar medicaciones",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "Texto libre", "name": "q", "in": "query"},
                    {"type": "string", "description": "all, active, upcoming, ended", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/medications.medicationResponse"}}},
                    "400": {"description": "status inválido", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Agregar medicación",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"description": "Datos de la medicación; fechas en formato YYYY-MM-DD", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medications.medicationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "400": {"description": "invalid json / validación", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/medications/refills": {
            "get": {
                "description": "Medicaciones con recordatorio activo cuya reposición cae entre hoy y hoy + within_days.",
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Reposiciones próximas",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "integer", "description": "0 a 365, default 7", "name": "within_days", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/medications.medicationResponse"}}},
                    "400": {"description": "within_days inválido", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/medications/{medicationID}": {
            "put": {
                "description": "Reemplazo completo. Un id inexistente devuelve 404 y no modifica nada.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Actualizar medicación",
                "parameters": [
                    {"type": "string", "description": "ID de la medicación", "name": "medicationID", "in": "path", "required": true},
                    {"description": "Registro completo", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medications.medicationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "400": {"description": "validación", "schema": {"type": "string"}},
                    "404": {"description": "medication not found", "schema": {"type": "string"}}
                }
            }
        },
        "/profile/contacts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Listar contactos de emergencia",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/healthprofile.contactResponse"}}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "name, relationship y primary_phone son obligatorios.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Agregar contacto de emergencia",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"description": "Contacto", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/healthprofile.contactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/healthprofile.contactResponse"}},
                    "400": {"description": "Please fill in all required fields for each contact", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/profile/contacts/{contactID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Obtener contacto de emergencia",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "ID del contacto", "name": "contactID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/healthprofile.contactResponse"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "emergency contact not found", "schema": {"type": "string"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Reemplazar contacto de emergencia",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "ID del contacto", "name": "contactID", "in": "path", "required": true},
                    {"description": "Contacto completo", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/healthprofile.contactRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/healthprofile.contactResponse"}},
                    "400": {"description": "validación", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "emergency contact not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["profile"],
                "summary": "Borrar contacto de emergencia",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"type": "string", "description": "ID del contacto", "name": "contactID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "emergency contact not found", "schema": {"type": "string"}}
                }
            }
        },
        "/profile/health": {
            "get": {
                "description": "Ficha médica del usuario; vacía si nunca se guardó.",
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Obtener ficha médica",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/healthprofile.healthDataPayload"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            },
            "put": {
                "description": "Reemplaza la ficha médica del usuario (grupo sanguíneo, altura, peso, condiciones, alergias y seguro).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Guardar ficha médica",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header"},
                    {"description": "Ficha completa", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/healthprofile.healthDataPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/healthprofile.healthDataPayload"}},
                    "400": {"description": "invalid json / validación", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "500": {"description": "Failed to save health data", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "account.changePasswordRequest": {
            "type": "object",
            "properties": {
                "confirm_password": {"type": "string"},
                "current_password": {"type": "string"},
                "new_password": {"type": "string"}
            }
        },
        "account.forgotPasswordRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"}
            }
        },
        "account.User": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "phone_number": {"type": "string"}
            }
        },
        "account.patchMeRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "phone_number": {"type": "string"}
            }
        },
        "account.sessionResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/account.User"}
            }
        },
        "account.signInRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "account.signUpRequest": {
            "type": "object",
            "properties": {
                "confirm_password": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "appointments.appointmentRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "doctor_name": {"type": "string"},
                "location": {"type": "string"},
                "notes": {"type": "string"},
                "specialty": {"type": "string"},
                "status": {"type": "string", "enum": ["upcoming", "completed", "cancelled"]},
                "time": {"type": "string"}
            }
        },
        "appointments.appointmentResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "doctor_name": {"type": "string"},
                "id": {"type": "string"},
                "location": {"type": "string"},
                "notes": {"type": "string"},
                "specialty": {"type": "string"},
                "status": {"type": "string"},
                "time": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "calendar.agendaAppointment": {
            "type": "object",
            "properties": {
                "doctor_name": {"type": "string"},
                "id": {"type": "string"},
                "location": {"type": "string"},
                "specialty": {"type": "string"},
                "status": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "calendar.agendaMedication": {
            "type": "object",
            "properties": {
                "dosage": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "time": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "calendar.agendaResponse": {
            "type": "object",
            "properties": {
                "appointments": {"type": "array", "items": {"$ref": "#/definitions/calendar.agendaAppointment"}},
                "date": {"type": "string"},
                "medications": {"type": "array", "items": {"$ref": "#/definitions/calendar.agendaMedication"}}
            }
        },
        "calendar.dayMarksResponse": {
            "type": "object",
            "properties": {
                "dots": {"type": "array", "items": {"$ref": "#/definitions/calendar.markerResponse"}},
                "selected": {"type": "boolean"},
                "selected_color": {"type": "string"}
            }
        },
        "calendar.markerResponse": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "key": {"type": "string", "enum": ["medication", "appointment"]}
            }
        },
        "calendar.monthResponse": {
            "type": "object",
            "properties": {
                "marked_dates": {"type": "object", "additionalProperties": {"$ref": "#/definitions/calendar.dayMarksResponse"}},
                "selected": {"type": "string"}
            }
        },
        "calendar.weekDayResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "highlighted": {"type": "boolean"},
                "weekday": {"type": "string"}
            }
        },
        "calendar.weekResponse": {
            "type": "object",
            "properties": {
                "days": {"type": "array", "items": {"$ref": "#/definitions/calendar.weekDayResponse"}},
                "label": {"type": "string"}
            }
        },
        "healthprofile.allergyPayload": {
            "type": "object",
            "properties": {
                "allergen": {"type": "string"},
                "id": {"type": "string"},
                "reaction": {"type": "string"},
                "severity": {"type": "string"}
            }
        },
        "healthprofile.conditionPayload": {
            "type": "object",
            "properties": {
                "diagnosed_date": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "healthprofile.contactRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "name": {"type": "string"},
                "primary_phone": {"type": "string"},
                "relationship": {"type": "string"},
                "secondary_phone": {"type": "string"}
            }
        },
        "healthprofile.contactResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "primary_phone": {"type": "string"},
                "relationship": {"type": "string"},
                "secondary_phone": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "healthprofile.healthDataPayload": {
            "type": "object",
            "properties": {
                "allergies": {"type": "array", "items": {"$ref": "#/definitions/healthprofile.allergyPayload"}},
                "blood_type": {"type": "string", "enum": ["A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"]},
                "conditions": {"type": "array", "items": {"$ref": "#/definitions/healthprofile.conditionPayload"}},
                "height_cm": {"type": "number"},
                "insurance": {"$ref": "#/definitions/healthprofile.insurancePayload"},
                "updated_at": {"type": "string"},
                "weight_kg": {"type": "number"}
            }
        },
        "healthprofile.insurancePayload": {
            "type": "object",
            "properties": {
                "group_number": {"type": "string"},
                "policy_number": {"type": "string"},
                "provider": {"type": "string"}
            }
        },
        "medications.medicationRequest": {
            "type": "object",
            "properties": {
                "dosage": {"type": "string"},
                "end_date": {"type": "string"},
                "frequency": {"type": "string", "enum": ["Once daily", "Twice daily", "Three times daily", "Four times daily", "Weekly", "As needed"]},
                "instructions": {"type": "string"},
                "name": {"type": "string"},
                "refill_date": {"type": "string"},
                "refill_reminder": {"type": "boolean"},
                "start_date": {"type": "string"},
                "time": {"type": "string"},
                "type": {"type": "string", "enum": ["Tablet", "Capsule", "Liquid", "Injection", "Inhaler", "Drops", "Cream", "Patch"]}
            }
        },
        "medications.medicationResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "dosage": {"type": "string"},
                "end_date": {"type": "string"},
                "frequency": {"type": "string"},
                "id": {"type": "string"},
                "instructions": {"type": "string"},
                "name": {"type": "string"},
                "refill_date": {"type": "string"},
                "refill_reminder": {"type": "boolean"},
                "start_date": {"type": "string"},
                "time": {"type": "string"},
                "type": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Health Companion API",
	Description:      "Medicaciones, turnos médicos, calendario, ficha médica y cuenta del usuario.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
