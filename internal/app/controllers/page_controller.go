package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageController serves the minimal HTML shells for the login page and
// the dashboard. The record UI itself is rendered client-side against
// the /api endpoints; these pages only exist so the front-door redirects
// have something to land on.
type PageController struct{}

// NewPageController creates a new PageController
func NewPageController() *PageController {
	return &PageController{}
}

// Login serves the login page shell
func (c *PageController) Login(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginPage))
}

// Dashboard serves the dashboard page shell
func (c *PageController) Dashboard(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardPage))
}

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Student Records - Login</title></head>
<body>
<h1>Student Records</h1>
<form id="login-form">
  <input name="username" placeholder="Username" required>
  <input name="password" type="password" placeholder="Password" required>
  <button type="submit">Sign in</button>
</form>
<script>
document.getElementById('login-form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const form = new FormData(e.target);
  const res = await fetch('/api/auth/login', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({username: form.get('username'), password: form.get('password')}),
  });
  if (res.ok) { window.location.href = '/dashboard'; } else { alert('Invalid username or password'); }
});
</script>
</body>
</html>`

const dashboardPage = `<!DOCTYPE html>
<html>
<head><title>Student Records - Dashboard</title></head>
<body>
<h1>Student Records Dashboard</h1>
<p><a href="/api/students/export">Export CSV</a></p>
<table id="students"></table>
<script>
fetch('/api/students').then(r => r.json()).then(({students}) => {
  const table = document.getElementById('students');
  table.innerHTML = '<tr><th>Student ID</th><th>Name</th><th>Program</th><th>Year</th><th>Status</th></tr>' +
    (students || []).map(s =>
      '<tr><td>' + s.studentId + '</td><td>' + s.fullName + '</td><td>' + s.program +
      '</td><td>' + s.yearLevel + '</td><td>' + s.status + '</td></tr>').join('');
});
</script>
</body>
</html>`
